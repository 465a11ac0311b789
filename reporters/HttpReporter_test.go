package reporters

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/reaandrew/keywordsearch/core"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type recordedRequest struct {
	Method string
	URL    string
	Body   string
}

type MockHttpClient struct {
	requests   []recordedRequest
	statusCode int
}

func (m *MockHttpClient) Do(req *http.Request) (*http.Response, error) {
	body, _ := io.ReadAll(req.Body)
	m.requests = append(m.requests, recordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Body:   string(body),
	})

	statusCode := m.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBufferString("This is a mock response body.")),
		Header:     make(http.Header),
	}, nil
}

type MockReportIdGenerator struct {
	id string
}

func (m MockReportIdGenerator) Generate() string {
	return m.id
}

func TestHttpReporter_Report(t *testing.T) {
	expectedId := "101"
	logger, _ := test.NewNullLogger()
	client := MockHttpClient{}
	report := HttpReporter{
		BaseURL:           "https://somewhere",
		HTTPClient:        &client,
		ReportIdGenerator: MockReportIdGenerator{id: expectedId},
		Logger:            logger,
	}

	err := report.Report(marcoPoloResults())

	assert.Nil(t, err)
	assert.Len(t, client.requests, 2)

	request1 := client.requests[0]
	assert.Equal(t, fmt.Sprintf("https://somewhere/reports/%s/results", expectedId), request1.URL)
	assert.Equal(t, "POST", request1.Method)
	assert.JSONEq(t, `{"Marco":["b.txt","a.txt"],"Polo":["b.txt"],"Venice":[]}`, request1.Body)

	request2 := client.requests[1]
	assert.Equal(t, fmt.Sprintf("https://somewhere/report/%s", expectedId), request2.URL)
	assert.Equal(t, "PATCH", request2.Method)
}

func TestHttpReporter_ReportFailsOnBadStatus(t *testing.T) {
	client := MockHttpClient{statusCode: http.StatusInternalServerError}
	report := HttpReporter{
		BaseURL:           "https://somewhere",
		HTTPClient:        &client,
		ReportIdGenerator: MockReportIdGenerator{id: "1"},
	}

	err := report.Report(marcoPoloResults())

	assert.ErrorContains(t, err, "unexpected response status: 500")
	assert.Len(t, client.requests, 1)
}

func TestHttpReporter_RequiresBaseURL(t *testing.T) {
	report := HttpReporter{HTTPClient: &MockHttpClient{}, ReportIdGenerator: UuidReportGenerator{}}

	assert.ErrorIs(t, report.Report(marcoPoloResults()), core.ErrConfiguration)
}
