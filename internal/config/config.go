package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port      int    `yaml:"port"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Upstream struct {
		ChartBaseURL   string `yaml:"chart_base_url"`
		SearchBaseURL  string `yaml:"search_base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"upstream"`
	Portfolio struct {
		SeedSymbols []string `yaml:"seed_symbols"`
		Concurrency int      `yaml:"concurrency"`
	} `yaml:"portfolio"`
	Schedule struct {
		SummaryCron string `yaml:"summary_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults apply.
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
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("YAHOO_CHART_BASE_URL"); v != "" {
		cfg.Upstream.ChartBaseURL = v
	}
	if v := os.Getenv("YAHOO_SEARCH_BASE_URL"); v != "" {
		cfg.Upstream.SearchBaseURL = v
	}
	if v := os.Getenv("SUMMARY_CRON"); v != "" {
		cfg.Schedule.SummaryCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3001
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stocks.db"
	}
	if cfg.Upstream.TimeoutSeconds == 0 {
		cfg.Upstream.TimeoutSeconds = 10
	}
	if len(cfg.Portfolio.SeedSymbols) == 0 {
		cfg.Portfolio.SeedSymbols = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN"}
	}
	if cfg.Portfolio.Concurrency == 0 {
		cfg.Portfolio.Concurrency = 4
	}

	return cfg, nil
}

// Validate checks that all required fields are sane.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required")
	}
	if c.Upstream.TimeoutSeconds <= 0 {
		return fmt.Errorf("upstream.timeout_seconds must be positive")
	}
	if c.Portfolio.Concurrency <= 0 {
		return fmt.Errorf("portfolio.concurrency must be positive")
	}
	return nil
}
