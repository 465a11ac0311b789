package searchers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reaandrew/keywordsearch/core"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestNewKeywordSearcherRejectsEmptyKeywords(t *testing.T) {
	searcher, err := NewKeywordSearcher(nil)

	assert.Nil(t, searcher)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestNewKeywordSearcherRejectsBlankKeyword(t *testing.T) {
	_, err := NewKeywordSearcher([]string{"Marco", ""})

	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestNewKeywordSearcherRejectsUnknownEncoding(t *testing.T) {
	_, err := NewKeywordSearcher([]string{"Marco"}, WithEncoding("klingon"))

	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestSearchInFileReportsEveryKeyword(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "b.txt", []byte("Polo and Marco"))
	searcher, err := NewKeywordSearcher([]string{"Marco", "Polo", "Venice"})
	require.NoError(t, err)

	result := searcher.SearchInFile(path)

	assert.Nil(t, result.Err)
	assert.Equal(t, core.FileMatched, result.Status())
	assert.Equal(t, map[string][]string{
		"Marco":  {path},
		"Polo":   {path},
		"Venice": {},
	}, result.Matches)
}

func TestSearchInFileIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", []byte("marco"))
	searcher, err := NewKeywordSearcher([]string{"Marco"})
	require.NoError(t, err)

	result := searcher.SearchInFile(path)

	assert.Equal(t, core.FileNoMatch, result.Status())
	assert.Equal(t, map[string][]string{"Marco": {}}, result.Matches)
}

func TestSearchInFileMissingFileIsLoggedAndEmpty(t *testing.T) {
	logger, hook := test.NewNullLogger()
	searcher, err := NewKeywordSearcher([]string{"Marco"}, WithLogger(logger))
	require.NoError(t, err)

	result := searcher.SearchInFile(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Equal(t, core.FileReadFailed, result.Status())
	assert.Empty(t, result.Matches)
	assert.ErrorIs(t, result.Err, core.ErrFileAccess)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestSearchInFileDirectoryIsNotReadable(t *testing.T) {
	logger, _ := test.NewNullLogger()
	searcher, err := NewKeywordSearcher([]string{"Marco"}, WithLogger(logger))
	require.NoError(t, err)

	result := searcher.SearchInFile(t.TempDir())

	assert.Equal(t, core.FileReadFailed, result.Status())
	assert.Empty(t, result.Matches)
}

func TestSearchInFilePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permissions")
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "secret.txt", []byte("Marco"))
	require.NoError(t, os.Chmod(path, 0000))
	defer os.Chmod(path, 0644)

	logger, hook := test.NewNullLogger()
	searcher, err := NewKeywordSearcher([]string{"Marco"}, WithLogger(logger))
	require.NoError(t, err)

	result := searcher.SearchInFile(path)

	assert.Equal(t, core.FileReadFailed, result.Status())
	assert.Empty(t, result.Matches)
	assert.Len(t, hook.Entries, 1)
}

func TestSearchInFileInvalidUTF8FailsDecoding(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "latin.txt", []byte("caf\xe9 Marco"))
	logger, hook := test.NewNullLogger()
	searcher, err := NewKeywordSearcher([]string{"Marco"}, WithLogger(logger))
	require.NoError(t, err)

	result := searcher.SearchInFile(path)

	assert.Equal(t, core.FileReadFailed, result.Status())
	assert.Empty(t, result.Matches)
	assert.Len(t, hook.Entries, 1)
}

func TestSearchInFileWithLatin1Encoding(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "latin.txt", []byte("caf\xe9 Marco"))
	searcher, err := NewKeywordSearcher([]string{"café", "Marco"}, WithEncoding("latin1"))
	require.NoError(t, err)

	result := searcher.SearchInFile(path)

	assert.Equal(t, "windows-1252", searcher.Encoding())
	assert.Equal(t, map[string][]string{"café": {path}, "Marco": {path}}, result.Matches)
}

func TestSearchInFileSkipsBinaryWhenAsked(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "blob.bin", []byte("Marco\x00\x01\x02"))
	logger, hook := test.NewNullLogger()

	plain, err := NewKeywordSearcher([]string{"Marco"}, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, core.FileMatched, plain.SearchInFile(path).Status())

	skipping, err := NewKeywordSearcher([]string{"Marco"}, WithLogger(logger), WithSkipBinary(true))
	require.NoError(t, err)
	result := skipping.SearchInFile(path)

	assert.Equal(t, core.FileReadFailed, result.Status())
	assert.ErrorIs(t, result.Err, core.ErrBinaryContent)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestKeywordsAreCopied(t *testing.T) {
	keywords := []string{"Marco"}
	searcher, err := NewKeywordSearcher(keywords)
	require.NoError(t, err)

	keywords[0] = "Polo"

	assert.Equal(t, []string{"Marco"}, searcher.Keywords())
}
