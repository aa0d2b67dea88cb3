// Package config loads, normalizes, and validates culler's TOML
// configuration. Every field has a usable default so the tool runs without a
// config file; an explicit config path that fails to parse or validate is a
// fatal startup error.
package config
