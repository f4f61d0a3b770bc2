package config

import (
	"errors"
	"fmt"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port    string `env:"PORT" envDefault:"4000"`
	Log     LogConfig
	Metrics MetricsConfig
	Sim     SimConfig
	Archive ArchiveConfig
	Rules   Rules
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// SimConfig controls randomness and league rules.
type SimConfig struct {
	// Seed of 0 draws a random seed at startup.
	Seed      uint64 `env:"SIM_SEED" envDefault:"0"`
	RulesFile string `env:"RULES_FILE"`
}

// Archive drivers.
const (
	ArchiveNone   = "none"
	ArchiveFS     = "fs"
	ArchiveSQLite = "sqlite"
)

// ArchiveConfig selects where finished seasons are written.
type ArchiveConfig struct {
	Driver string `env:"ARCHIVE_DRIVER" envDefault:"none"`
	Path   string `env:"ARCHIVE_PATH" envDefault:"data/archive"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads configuration from environment variables, then the rules file
// named by RULES_FILE (defaults when unset).
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	switch cfg.Archive.Driver {
	case ArchiveNone, ArchiveFS, ArchiveSQLite:
	default:
		return Config{}, fmt.Errorf("%w: archive driver %q", ErrInvalidConfig, cfg.Archive.Driver)
	}
	rules, err := LoadRules(cfg.Sim.RulesFile)
	if err != nil {
		return Config{}, err
	}
	cfg.Rules = rules
	return cfg, nil
}
