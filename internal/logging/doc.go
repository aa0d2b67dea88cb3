// Package logging constructs the application's log/slog loggers and provides
// shared attribute helpers. Console output uses a compact single-line
// handler; JSON output is available for machine consumption. Component
// loggers tag every record with the subsystem that emitted it.
package logging
