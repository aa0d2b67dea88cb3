package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	// No explicit path and no file at the default location inside a scratch
	// HOME: defaults apply.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scan.MinSizeMB != defaultMinSizeMB {
		t.Errorf("MinSizeMB = %v, want %v", cfg.Scan.MinSizeMB, float64(defaultMinSizeMB))
	}
	if cfg.Match.FuzzyThreshold != defaultFuzzyThreshold {
		t.Errorf("FuzzyThreshold = %v, want %v", cfg.Match.FuzzyThreshold, defaultFuzzyThreshold)
	}
	if !strings.HasSuffix(cfg.LedgerPath(), "ledger.db") {
		t.Errorf("LedgerPath = %q, want ledger.db under state dir", cfg.LedgerPath())
	}
}

func TestLoadExplicitMissingPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for explicit missing config path")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[scan]
extensions = ["MKV", ".mp4"]
min_size_mb = 250.0

[quality]
prefer_smaller = true

[quality.weights]
remux = 12

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scan.Extensions[0] != ".mkv" {
		t.Errorf("extension not normalized: %v", cfg.Scan.Extensions)
	}
	if cfg.Scan.MinSizeMB != 250 {
		t.Errorf("MinSizeMB = %v, want 250", cfg.Scan.MinSizeMB)
	}
	if !cfg.Quality.PreferSmaller || cfg.Quality.Weights["remux"] != 12 {
		t.Errorf("quality section not applied: %+v", cfg.Quality)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative min size", func(c *Config) { c.Scan.MinSizeMB = -1 }},
		{"threshold above one", func(c *Config) { c.Match.FuzzyThreshold = 1.5 }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"no extensions", func(c *Config) { c.Scan.Extensions = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatalf("normalize: %v", err)
			}
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLedgerPathOff(t *testing.T) {
	cfg := Default()
	cfg.Paths.LedgerPath = "off"
	if got := cfg.LedgerPath(); got != "" {
		t.Errorf("LedgerPath = %q, want empty when off", got)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error overwriting existing config")
	}

	// The sample must itself be loadable.
	if _, err := Load(path); err != nil {
		t.Errorf("sample config does not load: %v", err)
	}
}
