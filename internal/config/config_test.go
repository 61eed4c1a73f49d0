package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "narrative.db" || cfg.GRPCAddr != ":50051" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.MissionMaxAttempts != 0 {
		t.Fatalf("attempts should default to unlimited: %d", cfg.MissionMaxAttempts)
	}
	if cfg.ObservationWindowHours != 72 {
		t.Fatalf("window default wrong: %d", cfg.ObservationWindowHours)
	}
	if cfg.ConsistencyPrimaryThreshold != 95 || cfg.ConsistencySecondaryThreshold != 80 {
		t.Fatalf("threshold defaults wrong: %+v", cfg)
	}
	if cfg.TierCacheTTL != 5*time.Minute {
		t.Fatalf("ttl default wrong: %v", cfg.TierCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("MISSION_MAX_ATTEMPTS", "3")
	t.Setenv("STRICT_PUBLISH_ORDER", "true")
	t.Setenv("OBSERVATION_WINDOW_HOURS", "24")
	t.Setenv("TIER_CACHE_TTL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != ":memory:" || cfg.MissionMaxAttempts != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.Graph().StrictOrder {
		t.Fatal("strict order not propagated")
	}
	if cfg.Engine().MaxMissionAttempts != 3 {
		t.Fatal("engine config not derived")
	}
	if cfg.Mission().ObservationWindow != 24*time.Hour {
		t.Fatalf("mission window not derived: %v", cfg.Mission().ObservationWindow)
	}
	if cfg.TierCacheTTL != 30*time.Second {
		t.Fatalf("ttl override wrong: %v", cfg.TierCacheTTL)
	}
}

func TestLoadRejectsZeroWindow(t *testing.T) {
	t.Setenv("OBSERVATION_WINDOW_HOURS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}
