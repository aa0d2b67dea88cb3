package testsupport

import (
	"path/filepath"
	"testing"

	"culler/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp state directory per
// test, so parallel tests never contend on locks or ledgers.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.BackupFile = filepath.Join(base, "backup.json")

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithLedgerDisabled turns off run-history recording.
func WithLedgerDisabled() ConfigOption {
	return func(c *config.Config) {
		c.Paths.LedgerPath = "off"
	}
}

// WithMinSizeMB overrides the movie-mode size floor.
func WithMinSizeMB(size float64) ConfigOption {
	return func(c *config.Config) {
		c.Scan.MinSizeMB = size
	}
}
