package scanners

import (
	"context"

	"github.com/reaandrew/keywordsearch/core"
)

// SequentialScanner searches the files one after another on the calling
// goroutine.
type SequentialScanner struct {
	*base
}

func NewSequentialScanner(keywords []string, paths []string, opts ...Option) (*SequentialScanner, error) {
	b, err := newBase(keywords, paths, opts)
	if err != nil {
		return nil, err
	}
	return &SequentialScanner{base: b}, nil
}

func (s *SequentialScanner) RunSearches(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	s.reset()

	files := s.candidates()
	s.settings.progress.SetTotal(len(files))
	s.settings.logger.Debugf("Searching %d files sequentially", len(files))

	results := core.NewSearchResults(s.searcher.Keywords())
	fileResults := make([]core.FileResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			s.publish(results, fileResults)
			return err
		}
		result := s.searcher.SearchInFile(path)
		results.Extend(result)
		fileResults = append(fileResults, result)
		s.settings.progress.Increment()
	}

	s.publish(results, fileResults)
	return nil
}
