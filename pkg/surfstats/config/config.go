// Package config loads surfstats settings from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. SURFSTATS_REPORT_SIG_FIGS.
const EnvPrefix = "SURFSTATS"

// Config represents the complete application configuration
type Config struct {
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Plot    PlotConfig    `yaml:"plot" envconfig:"PLOT"`
}

// ReportConfig contains statistics and workbook settings
type ReportConfig struct {
	SigFigs     int     `yaml:"sig_figs" envconfig:"SIG_FIGS" default:"3"`
	ColumnWidth float64 `yaml:"column_width" envconfig:"COLUMN_WIDTH" default:"20"`
	OutputDir   string  `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"."`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text"`
}

// PlotConfig contains inspection plot settings. Plots are off while Dir is empty.
type PlotConfig struct {
	Dir    string `yaml:"dir" envconfig:"DIR"`
	Width  int    `yaml:"width" envconfig:"WIDTH" default:"480"`
	Height int    `yaml:"height" envconfig:"HEIGHT" default:"360"`
}

// Load reads defaults and environment variables, then overlays the YAML
// file at path when path is not empty. It does not validate: callers
// apply any command-line overrides first and then call Validate.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Report.SigFigs < 1 {
		return fmt.Errorf("report.sig_figs must be at least 1, got %d", c.Report.SigFigs)
	}
	if c.Report.ColumnWidth <= 0 {
		return fmt.Errorf("report.column_width must be positive, got %v", c.Report.ColumnWidth)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}
	return nil
}
