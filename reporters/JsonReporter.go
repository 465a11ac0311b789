package reporters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/reaandrew/keywordsearch/core"
)

// JsonReporter writes the aggregate as an indented JSON object keyed by
// keyword. With no Output it writes to Writer, or stdout.
type JsonReporter struct {
	Output string
	Writer io.Writer
}

func (j JsonReporter) Report(results core.SearchResults) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	data = append(data, '\n')

	if j.Output == "" {
		writer := j.Writer
		if writer == nil {
			writer = os.Stdout
		}
		if _, err := writer.Write(data); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(j.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report to %s: %w", j.Output, err)
	}
	return nil
}
