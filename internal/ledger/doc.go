// Package ledger persists a history of culler runs and the deletions they
// performed, backed by SQLite. The ledger is advisory: recording failures
// are surfaced to the caller so they can warn and keep sweeping, never to
// abort a run.
package ledger
