package reporters

import (
	"fmt"

	"github.com/reaandrew/keywordsearch/core"
	"github.com/reaandrew/keywordsearch/utils"
)

const DefaultSqliteReport = "keyword_search.db"

// SqliteReporter recreates a SQLite database holding a Keywords table and
// one Matches row per keyword/path pair.
type SqliteReporter struct {
	Output string
}

func (s SqliteReporter) Report(results core.SearchResults) error {
	output := s.Output
	if output == "" {
		output = DefaultSqliteReport
	}

	db, err := utils.InitializeSQLiteDB(output)
	if err != nil {
		return fmt.Errorf("failed to initialize SQLite database: %w", err)
	}
	defer db.Close()

	if err := utils.InsertMatches(db, results.Keywords(), results.Map()); err != nil {
		return fmt.Errorf("failed to store matches: %w", err)
	}
	return nil
}
