package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/reaandrew/keywordsearch/config"
	"github.com/reaandrew/keywordsearch/runner"
	"github.com/sirupsen/logrus"
)

// LambdaRequest represents the expected JSON structure in the request body
type LambdaRequest struct {
	Keywords   []string `json:"keywords"`
	Files      []string `json:"files"`
	Workers    *int     `json:"workers,omitempty"`
	Sequential bool     `json:"sequential"`
	Exclude    []string `json:"exclude,omitempty"`
	Encoding   string   `json:"encoding,omitempty"`
	SkipBinary bool     `json:"skip_binary,omitempty"`
}

type LambdaHandler struct {
	Logger logrus.FieldLogger
}

// Handle runs one search per API Gateway request and answers with the
// aggregate as JSON.
func (h LambdaHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var lambdaReq LambdaRequest
	if err := json.Unmarshal([]byte(request.Body), &lambdaReq); err != nil {
		h.Logger.Errorf("Error parsing request body: %v", err)
		return errorResponse(400, "Invalid JSON format."), nil
	}

	cfg := lambdaReq.toConfig()
	if _, err := runner.NewScanner(cfg, h.Logger); err != nil {
		h.Logger.Errorf("Validation error: %v", err)
		return errorResponse(400, err.Error()), nil
	}

	results, ok := runner.Run(ctx, cfg, h.Logger)
	if !ok {
		return errorResponse(500, "Search failed."), nil
	}

	body, err := json.Marshal(results)
	if err != nil {
		h.Logger.Errorf("Error encoding results: %v", err)
		return errorResponse(500, "Search failed."), nil
	}
	return toAPIGatewayResponse(200, string(body)), nil
}

func (r LambdaRequest) toConfig() config.Config {
	cfg := config.Default()
	cfg.Keywords = r.Keywords
	cfg.Files = r.Files
	if r.Workers != nil {
		cfg.Workers = *r.Workers
	}
	cfg.Sequential = r.Sequential
	cfg.Exclude = r.Exclude
	if r.Encoding != "" {
		cfg.Encoding = r.Encoding
	}
	cfg.SkipBinary = r.SkipBinary
	return cfg
}

func errorResponse(statusCode int, message string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(map[string]string{"error": message})
	return toAPIGatewayResponse(statusCode, string(body))
}

// toAPIGatewayResponse wraps a JSON body in an API Gateway response
func toAPIGatewayResponse(statusCode int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode:      statusCode,
		Headers:         map[string]string{"Content-Type": "application/json"},
		Body:            body,
		IsBase64Encoded: false,
	}
}

