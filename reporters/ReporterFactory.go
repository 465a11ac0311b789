package reporters

import (
	"context"
	"fmt"
	"strings"

	"github.com/reaandrew/keywordsearch/config"
	"github.com/reaandrew/keywordsearch/core"
	"github.com/reaandrew/keywordsearch/utils"
	"github.com/sirupsen/logrus"
)

// CreateReporter builds the reporter for cfg.Format. store is only consulted
// for an http reporter whose token lives in SSM; when nil an SSM client is
// created from the default AWS configuration.
func CreateReporter(ctx context.Context, cfg config.ReportConfig, logger logrus.FieldLogger, store utils.ParameterStore) (core.Reporter, error) {
	switch strings.ToLower(cfg.Format) {
	case "json":
		return JsonReporter{Output: cfg.Output}, nil
	case "xlsx":
		return XlsxReporter{Output: cfg.Output}, nil
	case "sqlite":
		return SqliteReporter{Output: cfg.Output}, nil
	case "bolt":
		return BoltReporter{Output: cfg.Output}, nil
	case "http":
		if cfg.BaseURL == "" {
			return nil, core.NewConfigurationError("http report requires a base url")
		}
		token, err := resolveToken(ctx, cfg, store)
		if err != nil {
			return nil, err
		}
		return NewDefaultHttpReporter(strings.TrimRight(cfg.BaseURL, "/"), token, logger), nil
	}

	return nil, core.NewConfigurationError("unknown report format: %s", cfg.Format)
}

func resolveToken(ctx context.Context, cfg config.ReportConfig, store utils.ParameterStore) (string, error) {
	if cfg.Token != "" || cfg.TokenSsmParameter == "" {
		return cfg.Token, nil
	}
	if store == nil {
		ssmStore, err := utils.NewSsmParameterStore(ctx)
		if err != nil {
			return "", err
		}
		store = ssmStore
	}
	token, err := store.GetParameter(ctx, cfg.TokenSsmParameter)
	if err != nil {
		return "", fmt.Errorf("failed to load report token: %w", err)
	}
	return token, nil
}
