package scanners

import (
	"context"
	"sync"

	"github.com/reaandrew/keywordsearch/core"
	"golang.org/x/sync/errgroup"
)

// PoolScanner fans one search task per file out to a bounded pool of workers
// and merges the per-file results as they complete.
type PoolScanner struct {
	*base
	workers int
}

func NewPoolScanner(keywords []string, paths []string, workers int, opts ...Option) (*PoolScanner, error) {
	if workers < 1 {
		return nil, core.NewConfigurationError("number of workers must be at least 1, got %d", workers)
	}
	b, err := newBase(keywords, paths, opts)
	if err != nil {
		return nil, err
	}
	return &PoolScanner{base: b, workers: workers}, nil
}

func (s *PoolScanner) Workers() int {
	return s.workers
}

// RunSearches blocks until every candidate file has been searched. Only a
// cancelled context makes it return an error; unreadable files are recorded
// in FileResults.
func (s *PoolScanner) RunSearches(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	s.reset()

	files := s.candidates()
	s.settings.progress.SetTotal(len(files))
	s.settings.logger.WithField("workers", s.workers).Debugf("Searching %d files", len(files))

	workers := s.workers
	if len(files) < workers {
		workers = len(files)
	}

	paths := make(chan string)
	found := make(chan core.FileResult, workers)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(paths)
		for _, path := range files {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case paths <- path:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for path := range paths {
				result := s.searcher.SearchInFile(path)
				select {
				case found <- result:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	// Once all workers are done, close the results channel
	go func() {
		wg.Wait()
		close(found)
	}()

	results := core.NewSearchResults(s.searcher.Keywords())
	fileResults := make([]core.FileResult, 0, len(files))
	for result := range found {
		results.Extend(result)
		fileResults = append(fileResults, result)
		s.settings.progress.Increment()
	}

	err := g.Wait()
	s.publish(results, fileResults)
	return err
}
