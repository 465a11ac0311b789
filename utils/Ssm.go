package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type ParameterStore interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

type SsmGetParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SsmParameterStore reads decrypted values from AWS SSM Parameter Store.
type SsmParameterStore struct {
	Client SsmGetParameterAPI
}

// NewSsmParameterStore uses the default AWS credential chain.
func NewSsmParameterStore(ctx context.Context) (*SsmParameterStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SsmParameterStore{Client: ssm.NewFromConfig(cfg)}, nil
}

func (s *SsmParameterStore) GetParameter(ctx context.Context, name string) (string, error) {
	result, err := s.Client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to retrieve parameter '%s': %w", name, err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil {
		return "", fmt.Errorf("parameter '%s' has no value", name)
	}

	return *result.Parameter.Value, nil
}
