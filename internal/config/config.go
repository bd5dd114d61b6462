package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-supplied defaults for everything that is not a
// positional argument. API credentials always come from the command line.
type Config struct {
	// Phone pre-fills the login phone prompt on first authentication.
	Phone string `env:"TGBACKUP_PHONE"`

	// SessionFile is the persisted session artifact, kept outside the
	// output directory so reruns skip interactive verification.
	SessionFile string `env:"TGBACKUP_SESSION" envDefault:"session.json"`

	// BatchSize is the history page size per API request; the --batch-size
	// flag overrides it.
	BatchSize int `env:"TGBACKUP_BATCH_SIZE"`

	LogLevel string `env:"TGBACKUP_LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = HistoryPageSize
	}
	if cfg.BatchSize < 1 || cfg.BatchSize > MaxHistoryPageSize {
		return nil, fmt.Errorf("batch size %d out of range (1-%d)", cfg.BatchSize, MaxHistoryPageSize)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level onto slog's levels. Unknown values
// fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
