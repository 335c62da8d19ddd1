package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingSiteURL      = errors.New("site.url is required")
	ErrMissingStatsPath    = errors.New("site.stats_path is required")
	ErrInvalidYearRange    = errors.New("years.start must not exceed years.end")
	ErrInvalidRequestRate  = errors.New("fetch.requests_per_sec must be positive")
	ErrInvalidWorkers      = errors.New("fetch.workers must be at least 1")
	ErrInvalidMaxAttempts  = errors.New("fetch.retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay = errors.New("fetch.retry.initial_delay_ms must be non-negative")
	ErrInvalidTimeout      = errors.New("fetch.timeout_sec must be at least 1")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete run configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Years   YearRange     `yaml:"years"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig locates the program's stats pages.
type SiteConfig struct {
	URL       string `yaml:"url" env:"GAUCHOWAR_SITE_URL"`
	StatsPath string `yaml:"stats_path" env:"GAUCHOWAR_STATS_PATH"`
}

// YearRange is the inclusive season range to process.
type YearRange struct {
	Start int `yaml:"start" env:"GAUCHOWAR_START_YEAR"`
	End   int `yaml:"end" env:"GAUCHOWAR_END_YEAR"`
}

// FetchConfig paces and bounds page retrieval.
type FetchConfig struct {
	UserAgent      string      `yaml:"user_agent" env:"GAUCHOWAR_USER_AGENT"`
	TimeoutSec     int         `yaml:"timeout_sec" env:"GAUCHOWAR_FETCH_TIMEOUT_SEC"`
	RequestsPerSec float64     `yaml:"requests_per_sec" env:"GAUCHOWAR_REQUESTS_PER_SEC"`
	Burst          int         `yaml:"burst" env:"GAUCHOWAR_FETCH_BURST"`
	Workers        int         `yaml:"workers" env:"GAUCHOWAR_FETCH_WORKERS"`
	Retry          RetryPolicy `yaml:"retry"`
}

// RetryPolicy defines fetch retry behavior.
type RetryPolicy struct {
	MaxAttempts    int `yaml:"max_attempts" env:"GAUCHOWAR_RETRY_MAX_ATTEMPTS"`
	InitialDelayMs int `yaml:"initial_delay_ms" env:"GAUCHOWAR_RETRY_INITIAL_DELAY_MS"`
	MaxDelayMs     int `yaml:"max_delay_ms" env:"GAUCHOWAR_RETRY_MAX_DELAY_MS"`
}

// OutputConfig defines where results land.
type OutputConfig struct {
	DataDir     string `yaml:"data_dir" env:"GAUCHOWAR_DATA_DIR"`
	PlayersCSV  string `yaml:"players_csv" env:"GAUCHOWAR_PLAYERS_CSV"`
	AnalysisCSV string `yaml:"analysis_csv" env:"GAUCHOWAR_ANALYSIS_CSV"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level" env:"GAUCHOWAR_LOG_LEVEL"`
}

// Default returns the configuration matching the published analysis run:
// UCSB baseball, seasons 2015-2025, two requests per second.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			URL:       "https://ucsbgauchos.com",
			StatsPath: "/sports/baseball/stats",
		},
		Years: YearRange{Start: 2015, End: 2025},
		Fetch: FetchConfig{
			TimeoutSec:     20,
			RequestsPerSec: 2,
			Burst:          1,
			Workers:        4,
			Retry: RetryPolicy{
				MaxAttempts:    3,
				InitialDelayMs: 500,
				MaxDelayMs:     10000,
			},
		},
		Output: OutputConfig{
			DataDir:     "~/.local/share/gauchowar",
			PlayersCSV:  "player_metrics.csv",
			AnalysisCSV: "war_analysis.csv",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment overrides, then validates it. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Site.URL == "" {
		return ErrMissingSiteURL
	}
	if c.Site.StatsPath == "" {
		return ErrMissingStatsPath
	}
	if c.Years.Start > c.Years.End {
		return ErrInvalidYearRange
	}
	if c.Fetch.RequestsPerSec <= 0 {
		return ErrInvalidRequestRate
	}
	if c.Fetch.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.Fetch.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if c.Fetch.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}
	if c.Fetch.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// RosterURL returns the stats page URL for a season.
func (c *Config) RosterURL(year int) string {
	return fmt.Sprintf("%s%s/%d", strings.TrimSuffix(c.Site.URL, "/"), c.Site.StatsPath, year)
}

// Timeout returns the fetch timeout as a duration.
func (c *FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// InitialDelay returns the first retry delay as a duration.
func (rp *RetryPolicy) InitialDelay() time.Duration {
	return time.Duration(rp.InitialDelayMs) * time.Millisecond
}

// MaxDelay returns the retry delay cap as a duration.
func (rp *RetryPolicy) MaxDelay() time.Duration {
	return time.Duration(rp.MaxDelayMs) * time.Millisecond
}
