package scanners

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gobwas/glob"
	"github.com/reaandrew/keywordsearch/core"
	"github.com/reaandrew/keywordsearch/searchers"
	"github.com/reaandrew/keywordsearch/utils"
	"github.com/sirupsen/logrus"
)

// Scanner searches a fixed list of files for a fixed set of keywords.
// RunSearches may be called again; every call starts from an empty aggregate.
type Scanner interface {
	RunSearches(ctx context.Context) error
	Results() core.SearchResults
	FileResults() []core.FileResult
}

type Option func(*settings) error

type settings struct {
	logger          logrus.FieldLogger
	progress        utils.ProgressReporter
	excludes        []glob.Glob
	searcherOptions []searchers.Option
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *settings) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

func WithProgress(progress utils.ProgressReporter) Option {
	return func(s *settings) error {
		if progress != nil {
			s.progress = progress
		}
		return nil
	}
}

// WithExcludes drops candidate files whose path or base name matches any of
// the glob patterns.
func WithExcludes(patterns []string) Option {
	return func(s *settings) error {
		for _, pattern := range patterns {
			compiled, err := glob.Compile(pattern, '/')
			if err != nil {
				return core.NewConfigurationError("invalid exclude pattern %q: %v", pattern, err)
			}
			s.excludes = append(s.excludes, compiled)
		}
		return nil
	}
}

func WithSearcherOptions(opts ...searchers.Option) Option {
	return func(s *settings) error {
		s.searcherOptions = append(s.searcherOptions, opts...)
		return nil
	}
}

// base holds what both scanners share: the searcher, the candidate list and
// the published results of the last run.
type base struct {
	searcher *searchers.KeywordSearcher
	paths    []string
	settings settings

	runMu sync.Mutex

	resultsMu   sync.RWMutex
	results     core.SearchResults
	fileResults []core.FileResult
}

func newBase(keywords []string, paths []string, opts []Option) (*base, error) {
	cfg := settings{
		logger:   logrus.StandardLogger(),
		progress: utils.NoopProgressReporter{},
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	searcherOpts := append([]searchers.Option{searchers.WithLogger(cfg.logger)}, cfg.searcherOptions...)
	searcher, err := searchers.NewKeywordSearcher(keywords, searcherOpts...)
	if err != nil {
		return nil, err
	}

	return &base{
		searcher: searcher,
		paths:    append([]string(nil), paths...),
		settings: cfg,
		results:  core.NewSearchResults(searcher.Keywords()),
	}, nil
}

// candidates returns the paths that currently exist as regular files, in
// input order, without duplicates or excluded entries.
func (b *base) candidates() []string {
	var files []string
	for _, path := range utils.Unique(b.paths) {
		if b.excluded(path) {
			b.settings.logger.WithField("path", path).Debug("Excluded by pattern")
			continue
		}
		if !utils.IsRegularFile(path) {
			b.settings.logger.WithField("path", path).Debug("Skipping, not an existing regular file")
			continue
		}
		files = append(files, path)
	}
	return files
}

func (b *base) excluded(path string) bool {
	slashed := filepath.ToSlash(path)
	name := filepath.Base(path)
	for _, pattern := range b.settings.excludes {
		if pattern.Match(slashed) || pattern.Match(name) {
			return true
		}
	}
	return false
}

func (b *base) reset() {
	b.resultsMu.Lock()
	defer b.resultsMu.Unlock()
	b.results = core.NewSearchResults(b.searcher.Keywords())
	b.fileResults = nil
}

func (b *base) publish(results core.SearchResults, fileResults []core.FileResult) {
	sort.Slice(fileResults, func(i, j int) bool {
		return fileResults[i].Path < fileResults[j].Path
	})
	b.resultsMu.Lock()
	defer b.resultsMu.Unlock()
	b.results = results
	b.fileResults = fileResults
}

// Results returns the aggregate of the last completed run. Before any run
// completes every keyword maps to an empty list.
func (b *base) Results() core.SearchResults {
	b.resultsMu.RLock()
	defer b.resultsMu.RUnlock()
	return b.results.Clone()
}

// FileResults returns the per-file outcome of the last run sorted by path,
// including files that could not be read.
func (b *base) FileResults() []core.FileResult {
	b.resultsMu.RLock()
	defer b.resultsMu.RUnlock()
	return append([]core.FileResult(nil), b.fileResults...)
}
