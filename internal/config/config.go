package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Input struct {
		CSVPath  string   `yaml:"csv_path"`
		NAValues []string `yaml:"na_values"`
	} `yaml:"input"`
	Report struct {
		HeadRows int `yaml:"head_rows"`
	} `yaml:"report"`
	Charts struct {
		OutputDir string `yaml:"output_dir"`
		Disabled  bool   `yaml:"disabled"`
	} `yaml:"charts"`
	Export struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"export"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then defaults. A missing config file is not an error; the
// defaults describe a complete one-shot run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKSTORY_CSV"); v != "" {
		cfg.Input.CSVPath = v
	}
	if v := os.Getenv("STOCKSTORY_CHARTS_DIR"); v != "" {
		cfg.Charts.OutputDir = v
	}
	if v := os.Getenv("STOCKSTORY_EXPORT_CSV"); v != "" {
		cfg.Export.CSVPath = v
	}
	if v := os.Getenv("STOCKSTORY_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("STOCKSTORY_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("STOCKSTORY_HEAD_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Report.HeadRows = n
		}
	}

	// Defaults
	if cfg.Input.NAValues == nil {
		cfg.Input.NAValues = []string{"", "NA", "N/A", "null"}
	}
	if cfg.Report.HeadRows == 0 {
		cfg.Report.HeadRows = 5
	}
	if cfg.Charts.OutputDir == "" {
		cfg.Charts.OutputDir = "charts"
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 18 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Input.CSVPath == "" {
		return fmt.Errorf("input.csv_path is required (flag, config, or STOCKSTORY_CSV)")
	}
	if c.Report.HeadRows <= 0 {
		return fmt.Errorf("report.head_rows must be positive")
	}
	return nil
}
