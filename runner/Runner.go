package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reaandrew/keywordsearch/config"
	"github.com/reaandrew/keywordsearch/core"
	"github.com/reaandrew/keywordsearch/scanners"
	"github.com/reaandrew/keywordsearch/searchers"
	"github.com/reaandrew/keywordsearch/utils"
	"github.com/sirupsen/logrus"
)

// NewScanner builds the scanner described by cfg.
func NewScanner(cfg config.Config, logger logrus.FieldLogger, opts ...scanners.Option) (scanners.Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scannerOpts := []scanners.Option{
		scanners.WithLogger(logger),
		scanners.WithExcludes(cfg.Exclude),
		scanners.WithSearcherOptions(
			searchers.WithEncoding(cfg.Encoding),
			searchers.WithSkipBinary(cfg.SkipBinary),
		),
	}
	scannerOpts = append(scannerOpts, opts...)

	if cfg.Sequential {
		return scanners.NewSequentialScanner(cfg.Keywords, cfg.Files, scannerOpts...)
	}
	return scanners.NewPoolScanner(cfg.Keywords, cfg.Files, cfg.Workers, scannerOpts...)
}

// Run performs one search and never fails loudly: configuration problems and
// anything unexpected are logged and reported as ok == false.
func Run(ctx context.Context, cfg config.Config, logger logrus.FieldLogger, opts ...scanners.Option) (results core.SearchResults, ok bool) {
	logger = logger.WithField("run_id", utils.NewRunID())

	defer func() {
		if p := recover(); p != nil {
			logger.Errorf("Unexpected error: %v", fmt.Errorf("%w: panic: %v", core.ErrUnexpected, p))
			results, ok = core.SearchResults{}, false
		}
	}()

	start := time.Now()
	scanner, err := NewScanner(cfg, logger, opts...)
	if err != nil {
		return fail(logger, err)
	}

	if err := scanner.RunSearches(ctx); err != nil {
		return fail(logger, err)
	}

	logger.Infof("Execution time: %.4f seconds", time.Since(start).Seconds())
	logUnreadable(logger, scanner.FileResults())
	return scanner.Results(), true
}

func logUnreadable(logger logrus.FieldLogger, fileResults []core.FileResult) {
	unreadable := 0
	for _, result := range fileResults {
		if result.Status() == core.FileReadFailed {
			unreadable++
		}
	}
	if unreadable > 0 {
		logger.Warnf("%d of %d files could not be read", unreadable, len(fileResults))
	}
}

func fail(logger logrus.FieldLogger, err error) (core.SearchResults, bool) {
	if errors.Is(err, core.ErrConfiguration) {
		logger.Errorf("Validation error: %v", err)
	} else {
		logger.Errorf("Unexpected error: %v", fmt.Errorf("%w: %w", core.ErrUnexpected, err))
	}
	return core.SearchResults{}, false
}
