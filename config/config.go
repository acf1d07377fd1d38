package config

import (
	"runtime"

	"github.com/caarlos0/env/v11"
)

// Config is read from the process environment.
type Config struct {
	// DebugTrace enables the per-round combat trace when set to any
	// non-empty value.
	DebugTrace string `env:"DEBUG_WARPLAN"`
	// Workers is the number of goroutines the predictor spreads
	// simulations across.
	Workers int `env:"WARPLAN_WORKERS"`
	// MetricsDir, when set, is the directory the planner exports its setup
	// grid into.
	MetricsDir string `env:"WARPLAN_METRICS_DIR"`
}

func Load() (Config, error) {
	cfg := Config{Workers: runtime.NumCPU()}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// Debug reports whether the combat trace toggle is set.
func (c Config) Debug() bool {
	return c.DebugTrace != ""
}
