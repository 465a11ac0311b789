package config

import (
	"strings"

	"github.com/reaandrew/keywordsearch/core"
)

const (
	DefaultWorkers  = 4
	DefaultEncoding = "utf-8"
)

var ReportFormats = []string{"json", "xlsx", "sqlite", "bolt", "http"}

type ReportConfig struct {
	Format            string `yaml:"format" toml:"format" json:"format,omitempty" hcl:"format,optional"`
	Output            string `yaml:"output" toml:"output" json:"output,omitempty" hcl:"output,optional"`
	BaseURL           string `yaml:"base_url" toml:"base_url" json:"base_url,omitempty" hcl:"base_url,optional"`
	Token             string `yaml:"token" toml:"token" json:"-" hcl:"token,optional"`
	TokenSsmParameter string `yaml:"token_ssm_parameter" toml:"token_ssm_parameter" json:"token_ssm_parameter,omitempty" hcl:"token_ssm_parameter,optional"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level" json:"level,omitempty" hcl:"level,optional"`
	File  string `yaml:"file" toml:"file" json:"file,omitempty" hcl:"file,optional"`
}

// Config is everything needed to run one keyword search.
type Config struct {
	Keywords   []string     `yaml:"keywords" toml:"keywords" json:"keywords"`
	Files      []string     `yaml:"files" toml:"files" json:"files"`
	Workers    int          `yaml:"workers" toml:"workers" json:"workers"`
	Sequential bool         `yaml:"sequential" toml:"sequential" json:"sequential"`
	Exclude    []string     `yaml:"exclude" toml:"exclude" json:"exclude,omitempty"`
	Encoding   string       `yaml:"encoding" toml:"encoding" json:"encoding,omitempty"`
	SkipBinary bool         `yaml:"skip_binary" toml:"skip_binary" json:"skip_binary,omitempty"`
	Progress   bool         `yaml:"progress" toml:"progress" json:"progress,omitempty"`
	Report     ReportConfig `yaml:"report" toml:"report" json:"report"`
	Log        LogConfig    `yaml:"log" toml:"log" json:"log"`
}

func Default() Config {
	return Config{
		Workers:  DefaultWorkers,
		Encoding: DefaultEncoding,
	}
}

// Validate checks the settings the search itself depends on. File paths are
// not checked: missing files are skipped at run time.
func (c Config) Validate() error {
	if len(c.Keywords) == 0 {
		return core.NewConfigurationError("keywords list cannot be empty")
	}
	for i, keyword := range c.Keywords {
		if keyword == "" {
			return core.NewConfigurationError("keyword at position %d is empty", i)
		}
	}
	if !c.Sequential && c.Workers < 1 {
		return core.NewConfigurationError("number of workers must be at least 1, got %d", c.Workers)
	}
	if c.Report.Format != "" {
		if err := validateReportFormat(c.Report.Format); err != nil {
			return err
		}
	}
	return nil
}

func validateReportFormat(format string) error {
	for _, known := range ReportFormats {
		if strings.EqualFold(format, known) {
			return nil
		}
	}
	return core.NewConfigurationError("unknown report format: %s (supported: %s)", format, strings.Join(ReportFormats, ", "))
}
