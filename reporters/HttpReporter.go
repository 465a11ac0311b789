package reporters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/reaandrew/keywordsearch/core"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type ReportIdGenerator interface {
	Generate() string
}

type UuidReportGenerator struct {
}

func (u UuidReportGenerator) Generate() string {
	return uuid.New().String()
}

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewDefaultHttpReporter posts with http.DefaultClient, or with a client
// sending the bearer token when one is given.
func NewDefaultHttpReporter(baseUrl string, token string, logger logrus.FieldLogger) HttpReporter {
	var client HttpClient = http.DefaultClient
	if token != "" {
		client = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		}))
	}
	return HttpReporter{
		BaseURL:           baseUrl,
		HTTPClient:        client,
		ReportIdGenerator: UuidReportGenerator{},
		Logger:            logger,
	}
}

// HttpReporter posts the aggregate to {BaseURL}/reports/{id}/results and then
// marks the report completed with a PATCH to {BaseURL}/report/{id}.
type HttpReporter struct {
	BaseURL           string
	HTTPClient        HttpClient
	ReportIdGenerator ReportIdGenerator
	Logger            logrus.FieldLogger
}

func (h HttpReporter) Report(results core.SearchResults) error {
	if h.BaseURL == "" {
		return core.NewConfigurationError("http report requires a base url")
	}
	logger := h.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	reportId := h.ReportIdGenerator.Generate()
	logger = logger.WithField("report_id", reportId)

	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	url := fmt.Sprintf("%s/reports/%s/results", h.BaseURL, reportId)
	if err := h.send(http.MethodPost, url, payload); err != nil {
		return fmt.Errorf("failed to report results: %w", err)
	}
	logger.Debugf("Posted results to %s", url)

	url = fmt.Sprintf("%s/report/%s", h.BaseURL, reportId)
	if err := h.send(http.MethodPatch, url, []byte(`{"status": "completed"}`)); err != nil {
		return fmt.Errorf("failed to signal completion: %w", err)
	}
	logger.Debugf("Signalled completion to %s", url)

	return nil
}

func (h HttpReporter) send(method string, url string, payload []byte) error {
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response status: %d", resp.StatusCode)
	}

	return nil
}
