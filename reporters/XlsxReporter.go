package reporters

import (
	"fmt"

	"github.com/reaandrew/keywordsearch/core"
	"github.com/xuri/excelize/v2"
)

const (
	DefaultXlsxReport = "keyword_search_report.xlsx"
	resultsSheet      = "Results"
	summarySheet      = "Summary"
)

// XlsxReporter writes one Keyword/Path row per match on the Results sheet and
// a Keyword/Files count per keyword on the Summary sheet.
type XlsxReporter struct {
	Output string
}

func (x XlsxReporter) Report(results core.SearchResults) error {
	output := x.Output
	if output == "" {
		output = DefaultXlsxReport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := writeRow(f, resultsSheet, 1, "Keyword", "Path"); err != nil {
		return err
	}
	if err := writeRow(f, summarySheet, 1, "Keyword", "Files"); err != nil {
		return err
	}

	sorted := results.Sorted()
	row := 2
	for i, keyword := range sorted.Keywords() {
		paths := sorted.Get(keyword)
		for _, path := range paths {
			if err := writeRow(f, resultsSheet, row, keyword, path); err != nil {
				return err
			}
			row++
		}
		if err := writeRow(f, summarySheet, i+2, keyword, len(paths)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("failed to save XLSX report %s: %w", output, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
