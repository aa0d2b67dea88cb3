package main

import (
	"log/slog"

	"culler/internal/config"
	"culler/internal/logging"
)

// commandContext carries lazily-resolved configuration shared by every
// subcommand, so each command sees the same persistent flag values without
// re-parsing them.
type commandContext struct {
	configFlag *string

	cfg *config.Config
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureConfig loads (once) the configuration named by the persistent flag,
// falling back to the default location and then to built-in defaults.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// newLogger builds the run logger from configuration, with verbose forcing
// debug level regardless of the configured one.
func (c *commandContext) newLogger(verbose bool) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
}
