package reporters

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	bolt "go.etcd.io/bbolt"
)

func TestJsonReporterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	reporter := JsonReporter{Writer: &buf}

	require.NoError(t, reporter.Report(marcoPoloResults()))

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string][]string{
		"Marco":  {"b.txt", "a.txt"},
		"Polo":   {"b.txt"},
		"Venice": {},
	}, decoded)
}

func TestJsonReporterWritesToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "results.json")

	require.NoError(t, JsonReporter{Output: output}.Report(marcoPoloResults()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Venice": []`)
}

func TestXlsxReporter(t *testing.T) {
	output := filepath.Join(t.TempDir(), "results.xlsx")

	require.NoError(t, XlsxReporter{Output: output}.Report(marcoPoloResults()))

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Keyword", "Path"},
		{"Marco", "a.txt"},
		{"Marco", "b.txt"},
		{"Polo", "b.txt"},
	}, rows)

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Keyword", "Files"},
		{"Marco", "2"},
		{"Polo", "1"},
		{"Venice", "0"},
	}, summary)
}

func TestSqliteReporter(t *testing.T) {
	output := filepath.Join(t.TempDir(), "results.db")

	require.NoError(t, SqliteReporter{Output: output}.Report(marcoPoloResults()))
	// Reporting again replaces the previous database.
	require.NoError(t, SqliteReporter{Output: output}.Report(marcoPoloResults()))

	db, err := sql.Open("sqlite3", output)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query("SELECT Keyword, COUNT(Path) FROM Matches GROUP BY Keyword ORDER BY Keyword")
	require.NoError(t, err)
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var keyword string
		var count int
		require.NoError(t, rows.Scan(&keyword, &count))
		counts[keyword] = count
	}
	assert.Equal(t, map[string]int{"Marco": 2, "Polo": 1}, counts)

	var keywords int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM Keywords").Scan(&keywords))
	assert.Equal(t, 3, keywords)
}

func TestBoltReporter(t *testing.T) {
	output := filepath.Join(t.TempDir(), "results.bolt")

	require.NoError(t, BoltReporter{Output: output}.Report(marcoPoloResults()))

	db, err := bolt.Open(output, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	stored := map[string][]string{}
	err = db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, bucket *bolt.Bucket) error {
			paths := []string{}
			err := bucket.ForEach(func(k, _ []byte) error {
				paths = append(paths, string(k))
				return nil
			})
			stored[string(name)] = paths
			return err
		})
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"Marco":  {"a.txt", "b.txt"},
		"Polo":   {"b.txt"},
		"Venice": {},
	}, stored)
}
