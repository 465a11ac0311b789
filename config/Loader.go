package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/reaandrew/keywordsearch/core"
	"gopkg.in/yaml.v3"
)

// hclConfig mirrors Config with optional blocks, since HCL requires a
// non-pointer block to be present.
type hclConfig struct {
	Keywords   []string      `hcl:"keywords,optional"`
	Files      []string      `hcl:"files,optional"`
	Workers    *int          `hcl:"workers,optional"`
	Sequential *bool         `hcl:"sequential,optional"`
	Exclude    []string      `hcl:"exclude,optional"`
	Encoding   *string       `hcl:"encoding,optional"`
	SkipBinary *bool         `hcl:"skip_binary,optional"`
	Progress   *bool         `hcl:"progress,optional"`
	Report     *ReportConfig `hcl:"report,block"`
	Log        *LogConfig    `hcl:"log,block"`
}

// Load reads a YAML, TOML or HCL file on top of the defaults. The format is
// picked from the file extension.
func Load(path string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, core.NewConfigurationError("failed to read config file '%s': %v", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, core.NewConfigurationError("failed to parse YAML config '%s': %v", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, core.NewConfigurationError("failed to parse TOML config '%s': %v", path, err)
		}
	case ".hcl":
		var parsed hclConfig
		if err := hclsimple.DecodeFile(path, nil, &parsed); err != nil {
			return cfg, core.NewConfigurationError("failed to parse HCL config '%s': %v", path, err)
		}
		parsed.applyTo(&cfg)
	default:
		return cfg, core.NewConfigurationError("unsupported config file type '%s' (use .yaml, .toml or .hcl)", path)
	}

	return cfg, nil
}

func (h hclConfig) applyTo(cfg *Config) {
	if h.Keywords != nil {
		cfg.Keywords = h.Keywords
	}
	if h.Files != nil {
		cfg.Files = h.Files
	}
	if h.Workers != nil {
		cfg.Workers = *h.Workers
	}
	if h.Sequential != nil {
		cfg.Sequential = *h.Sequential
	}
	if h.Exclude != nil {
		cfg.Exclude = h.Exclude
	}
	if h.Encoding != nil {
		cfg.Encoding = *h.Encoding
	}
	if h.SkipBinary != nil {
		cfg.SkipBinary = *h.SkipBinary
	}
	if h.Progress != nil {
		cfg.Progress = *h.Progress
	}
	if h.Report != nil {
		cfg.Report = *h.Report
	}
	if h.Log != nil {
		cfg.Log = *h.Log
	}
}
