// Package config loads the engine's runtime configuration from the
// environment. cmd binaries load a .env file first via godotenv; this
// package only reads the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/velvetpath/narrative-engine/internal/engine"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/mission"
	"github.com/velvetpath/narrative-engine/internal/scorer"
)

// #region config

// Config is the full runtime configuration.
type Config struct {
	// DBPath is the SQLite database file; ":memory:" for ephemeral runs.
	DBPath   string `env:"DB_PATH" envDefault:"narrative.db"`
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":50051"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// MissionMaxAttempts bounds re-attempts per fragment mission;
	// zero means unlimited.
	MissionMaxAttempts     int `env:"MISSION_MAX_ATTEMPTS" envDefault:"0"`
	ObservationWindowHours int `env:"OBSERVATION_WINDOW_HOURS" envDefault:"72"`

	// StrictPublishOrder makes Publish reject unresolved choice
	// destinations immediately instead of deferring to Finalize.
	StrictPublishOrder bool `env:"STRICT_PUBLISH_ORDER" envDefault:"false"`

	ConsistencyPrimaryThreshold   int `env:"CONSISTENCY_PRIMARY_THRESHOLD" envDefault:"95"`
	ConsistencySecondaryThreshold int `env:"CONSISTENCY_SECONDARY_THRESHOLD" envDefault:"80"`

	TierCacheTTL time.Duration `env:"TIER_CACHE_TTL" envDefault:"5m"`

	// DefaultTier is the tier assumed for users the subscription
	// source has no record of.
	DefaultTier string `env:"DEFAULT_TIER" envDefault:"open"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ObservationWindowHours < 1 {
		return Config{}, fmt.Errorf("OBSERVATION_WINDOW_HOURS must be >= 1, got %d", cfg.ObservationWindowHours)
	}
	if !fragment.Tier(cfg.DefaultTier).Valid() {
		return Config{}, fmt.Errorf("DEFAULT_TIER must be one of open, mid, premium; got %q", cfg.DefaultTier)
	}
	return cfg, nil
}

// #endregion config

// #region derived

// Engine returns the engine-level knobs.
func (c Config) Engine() engine.Config {
	return engine.Config{MaxMissionAttempts: c.MissionMaxAttempts}
}

// Graph returns the graph store knobs.
func (c Config) Graph() graph.Config {
	return graph.Config{StrictOrder: c.StrictPublishOrder}
}

// Scorer returns the consistency scorer thresholds.
func (c Config) Scorer() scorer.Config {
	return scorer.Config{
		PrimaryThreshold:   c.ConsistencyPrimaryThreshold,
		SecondaryThreshold: c.ConsistencySecondaryThreshold,
	}
}

// Mission returns the validator windows.
func (c Config) Mission() mission.Config {
	return mission.Config{
		ObservationWindow: time.Duration(c.ObservationWindowHours) * time.Hour,
	}
}

// #endregion derived
