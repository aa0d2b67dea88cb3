// Package confirm implements the per-group interactive confirmation loop as
// a small state machine driven by one blocking line read per group. The
// grouping engine stays UI-free: callers feed it an io.Reader/io.Writer pair,
// which makes the exchange fully scriptable in tests.
package confirm
