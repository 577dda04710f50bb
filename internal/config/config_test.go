package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.Cache.TTL != 6*time.Hour {
		t.Fatalf("cache ttl = %v", cfg.Cache.TTL)
	}
	if cfg.Chart.BinFt != 2.0 || cfg.Chart.VLim != 0.15 || cfg.Chart.SampleCap != 1000 {
		t.Fatalf("chart config = %+v", cfg.Chart)
	}
	if cfg.Chart.ArcSamples != 32 || !cfg.Chart.Halo {
		t.Fatalf("chart config = %+v", cfg.Chart)
	}
	if cfg.StatsAPI.Timeout != 15*time.Second || cfg.StatsAPI.MaxRetries != 3 {
		t.Fatalf("stats config = %+v", cfg.StatsAPI)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics enabled by default")
	}
}

func TestLoadApexProfiles(t *testing.T) {
	cfg := Load()

	heat, plain := cfg.Chart.HeatmapApex, cfg.Chart.PlainApex
	if heat.Base != 10.0 || heat.Slope != 0.28 || heat.Lo != 13.0 || heat.Hi != 18.5 {
		t.Fatalf("heatmap apex = %+v", heat)
	}
	if plain.Base != 10.5 || plain.Slope != 0.30 || plain.Lo != 14.0 || plain.Hi != 19.5 {
		t.Fatalf("plain apex = %+v", plain)
	}
	// The overlay profile stays below the plain one so arcs flatten under
	// the heatmap surface.
	if heat.Hi >= plain.Hi || heat.Lo >= plain.Lo {
		t.Fatalf("profile ordering wrong: %+v vs %+v", heat, plain)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PROVIDER", "statsapi")
	t.Setenv("SHOTCHART_CACHE_TTL", "30m")
	t.Setenv("CHART_BIN_FT", "1.0")
	t.Setenv("CHART_SAMPLE_CAP", "200")
	t.Setenv("CHART_BOUNDARY_HALO", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("METRICS_ENABLED", "1")

	cfg := Load()
	if cfg.Port != "8080" || cfg.Provider != "statsapi" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Cache.TTL != 30*time.Minute || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
	if cfg.Chart.BinFt != 1.0 || cfg.Chart.SampleCap != 200 || cfg.Chart.Halo {
		t.Fatalf("chart = %+v", cfg.Chart)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics not enabled")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SHOTCHART_CACHE_TTL", "never")
	t.Setenv("CHART_SAMPLE_CAP", "-5")
	t.Setenv("CHART_BIN_FT", "wide")

	cfg := Load()
	if cfg.Cache.TTL != 6*time.Hour {
		t.Fatalf("ttl = %v, want default", cfg.Cache.TTL)
	}
	if cfg.Chart.SampleCap != 1000 || cfg.Chart.BinFt != 2.0 {
		t.Fatalf("chart = %+v, want defaults", cfg.Chart)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw      string
		fallback bool
		want     bool
	}{
		{"", true, true},
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL", tc.raw)
		if got := boolEnvOrDefault("TEST_BOOL", tc.fallback); got != tc.want {
			t.Errorf("boolEnvOrDefault(%q, %v) = %v, want %v", tc.raw, tc.fallback, got, tc.want)
		}
	}
}
