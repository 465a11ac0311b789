package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reaandrew/keywordsearch/config"
	"github.com/reaandrew/keywordsearch/core"
	"github.com/reaandrew/keywordsearch/reporters"
	"github.com/reaandrew/keywordsearch/runner"
	"github.com/reaandrew/keywordsearch/scanners"
	"github.com/reaandrew/keywordsearch/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNoResult = errors.New("search produced no result")

// Cli represents the command-line interface
type Cli struct {
	configFile   string
	keywords     []string
	workers      int
	sequential   bool
	exclude      []string
	encoding     string
	skipBinary   bool
	progress     bool
	reportFormat string
	output       string
	baseUrl      string
	logLevel     string
	logFile      string

	stdout io.Writer
}

func NewCli(stdout io.Writer) *Cli {
	return &Cli{stdout: stdout}
}

// Execute sets up and runs the root command
func (cli *Cli) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cli.NewRootCommand().ExecuteContext(ctx)
}

func (cli *Cli) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keywordsearch",
		Short:         "keywordsearch looks for literal keywords across a list of files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(cli.stdout)

	rootCmd.AddCommand(cli.createSearchCommand())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Run: func(cmd *cobra.Command, args []string) {
			version := Version
			if version == "" {
				version = "dev"
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return rootCmd
}

// createSearchCommand creates the 'search' subcommand with its flags
func (cli *Cli) createSearchCommand() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search [FILES...]",
		Short: "Search the given files for every keyword.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.search(cmd, args)
		},
	}

	flags := searchCmd.Flags()
	flags.StringVar(&cli.configFile, "config", "", "Config file (.yaml, .toml or .hcl)")
	flags.StringArrayVarP(&cli.keywords, "keyword", "k", nil, "Keyword to search for (repeatable)")
	flags.IntVarP(&cli.workers, "workers", "w", config.DefaultWorkers, "Number of parallel workers")
	flags.BoolVar(&cli.sequential, "sequential", false, "Search files one at a time")
	flags.StringArrayVar(&cli.exclude, "exclude", nil, "Glob of files to skip (repeatable)")
	flags.StringVar(&cli.encoding, "encoding", config.DefaultEncoding, "Text encoding of the files")
	flags.BoolVar(&cli.skipBinary, "skip-binary", false, "Treat binary files as unreadable")
	flags.BoolVar(&cli.progress, "progress", false, "Show a progress bar")
	flags.StringVar(&cli.reportFormat, "report", "", "Report format (supported: json, xlsx, sqlite, bolt, http)")
	flags.StringVar(&cli.output, "output", "", "Report output path")
	flags.StringVar(&cli.baseUrl, "baseurl", "", "Http report base url")
	flags.StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cli.logFile, "log-file", "", "Also append log lines to this file")

	return searchCmd
}

func (cli *Cli) search(cmd *cobra.Command, args []string) error {
	cfg, loadErr := cli.buildConfig(cmd, args)

	logger, cleanup, err := utils.SetupLogging(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer cleanup()

	if loadErr != nil {
		logger.Errorf("Validation error: %v", loadErr)
		return errNoResult
	}

	var opts []scanners.Option
	if cfg.Progress {
		opts = append(opts, scanners.WithProgress(utils.NewBarProgressReporter(0, "searching")))
	}

	results, ok := runner.Run(cmd.Context(), cfg, logger, opts...)
	if !ok {
		return errNoResult
	}

	summary, _ := json.Marshal(results)
	logger.Infof("Search results: %s", summary)

	if cfg.Report.Format == "" {
		return nil
	}
	return cli.report(cmd, cfg, logger, results)
}

func (cli *Cli) report(cmd *cobra.Command, cfg config.Config, logger *logrus.Logger, results core.SearchResults) error {
	reporter, err := reporters.CreateReporter(cmd.Context(), cfg.Report, logger, nil)
	if err != nil {
		return err
	}
	if jsonReporter, ok := reporter.(reporters.JsonReporter); ok && jsonReporter.Output == "" {
		jsonReporter.Writer = cli.stdout
		reporter = jsonReporter
	}

	if err := reporter.Report(results); err != nil {
		return fmt.Errorf("failed to generate %s report: %w", cfg.Report.Format, err)
	}
	logger.Infof("Generated %s report", cfg.Report.Format)
	return nil
}

// buildConfig starts from the config file, when given, and lets explicitly
// set flags and positional files override it.
func (cli *Cli) buildConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	var loadErr error
	if cli.configFile != "" {
		cfg, loadErr = config.Load(cli.configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("keyword") {
		cfg.Keywords = cli.keywords
	}
	if len(args) > 0 {
		cfg.Files = args
	}
	if flags.Changed("workers") {
		cfg.Workers = cli.workers
	}
	if flags.Changed("sequential") {
		cfg.Sequential = cli.sequential
	}
	if flags.Changed("exclude") {
		cfg.Exclude = cli.exclude
	}
	if flags.Changed("encoding") {
		cfg.Encoding = cli.encoding
	}
	if flags.Changed("skip-binary") {
		cfg.SkipBinary = cli.skipBinary
	}
	if flags.Changed("progress") {
		cfg.Progress = cli.progress
	}
	if flags.Changed("report") {
		cfg.Report.Format = cli.reportFormat
	}
	if flags.Changed("output") {
		cfg.Report.Output = cli.output
	}
	if flags.Changed("baseurl") {
		cfg.Report.BaseURL = cli.baseUrl
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = cli.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = cli.logFile
	}

	return cfg, loadErr
}
