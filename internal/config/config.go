package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory locations.
type Paths struct {
	// StateDir holds the lock file and, by default, the ledger database.
	StateDir string `toml:"state_dir"`
	// BackupFile is where the pre-deletion JSON manifest is written.
	BackupFile string `toml:"backup_file"`
	// LedgerPath overrides the ledger database location. Empty means
	// StateDir/ledger.db; the literal "off" disables history recording.
	LedgerPath string `toml:"ledger_path"`
}

// Scan controls which files enter consideration.
type Scan struct {
	Extensions    []string `toml:"extensions"`
	ExtrasFolders []string `toml:"extras_folders"`
	MinSizeMB     float64  `toml:"min_size_mb"`
}

// Match tunes duplicate detection.
type Match struct {
	FuzzyThreshold float64 `toml:"fuzzy_threshold"`
}

// Quality tunes scoring.
type Quality struct {
	PreferSmaller bool `toml:"prefer_smaller"`
	// Weights overrides or extends the built-in keyword lexicon.
	Weights map[string]int `toml:"weights"`
}

// Logging contains log output settings.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for culler.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Scan    Scan    `toml:"scan"`
	Match   Match   `toml:"match"`
	Quality Quality `toml:"quality"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/culler/config.toml")
}

// Load locates, parses, normalizes, and validates a configuration file. When
// path is empty the default location is tried and a missing file falls back
// to defaults; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}
	if path != "" && !exists {
		return nil, fmt.Errorf("config file %s does not exist", resolved)
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return expanded, true, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LedgerPath != "" && c.Paths.LedgerPath != "off" {
		if c.Paths.LedgerPath, err = expandPath(c.Paths.LedgerPath); err != nil {
			return fmt.Errorf("paths.ledger_path: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.BackupFile) == "" {
		c.Paths.BackupFile = defaultBackupFile
	}

	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = defaultExtensions()
	}
	for i, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Scan.Extensions[i] = ext
	}
	if len(c.Scan.ExtrasFolders) == 0 {
		c.Scan.ExtrasFolders = defaultExtrasFolders()
	}

	if c.Match.FuzzyThreshold == 0 {
		c.Match.FuzzyThreshold = defaultFuzzyThreshold
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// LedgerPath resolves the effective ledger database location. The empty
// string means history recording is disabled.
func (c *Config) LedgerPath() string {
	switch c.Paths.LedgerPath {
	case "off":
		return ""
	case "":
		return filepath.Join(c.Paths.StateDir, "ledger.db")
	default:
		return c.Paths.LedgerPath
	}
}

// LockPath is the single-instance lock file location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "culler.lock")
}

// EnsureStateDir creates the state directory if missing.
func (c *Config) EnsureStateDir() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("ensure state dir: %w", err)
	}
	return nil
}

// WriteSample writes the annotated sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file %s already exists", expanded)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
