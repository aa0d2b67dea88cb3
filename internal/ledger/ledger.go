package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped whenever schema.sql changes shape. A mismatched
// database must be deleted by the user; the ledger carries history, not
// state the tool depends on.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was created by an incompatible
// culler version.
var ErrSchemaMismatch = errors.New("ledger schema version mismatch")

// Run describes one invocation of the sweep pipeline.
type Run struct {
	ID        string
	StartedAt time.Time
	Mode      string
	Root      string
	DryRun    bool
	Reverse   bool
}

// Deletion is one attempted file removal within a run.
type Deletion struct {
	RunID    string
	Path     string
	GroupKey string
	Score    float64
	SizeMB   float64
	// Status is "deleted", "failed", or "planned" (dry-run).
	Status string
	Error  string
}

// Store persists run history in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to (or creates) the ledger database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin schema tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return tx.Commit()
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// RecordRun inserts the run header row.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, mode, root, dry_run, reverse) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.Mode,
		run.Root,
		boolToInt(run.DryRun),
		boolToInt(run.Reverse),
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}
	return nil
}

// RecordDeletion appends one deletion outcome to the run's history.
func (s *Store) RecordDeletion(ctx context.Context, del Deletion) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deletions (run_id, path, group_key, score, size_mb, status, error, recorded_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		del.RunID,
		del.Path,
		del.GroupKey,
		del.Score,
		del.SizeMB,
		del.Status,
		del.Error,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record deletion %s: %w", del.Path, err)
	}
	return nil
}

// RunSummary is one row of `culler history` output.
type RunSummary struct {
	Run       Run
	Deletions int
	Failures  int
}

// RecentRuns returns the newest limit runs with deletion counts, newest
// first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.started_at, r.mode, r.root, r.dry_run, r.reverse,
                COUNT(d.id),
                COALESCE(SUM(CASE WHEN d.status = 'failed' THEN 1 ELSE 0 END), 0)
         FROM runs r
         LEFT JOIN deletions d ON d.run_id = r.id
         GROUP BY r.id
         ORDER BY r.started_at DESC
         LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var (
			summary   RunSummary
			startedAt string
			dryRun    int
			reverse   int
		)
		if err := rows.Scan(
			&summary.Run.ID, &startedAt, &summary.Run.Mode, &summary.Run.Root,
			&dryRun, &reverse, &summary.Deletions, &summary.Failures,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		summary.Run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		summary.Run.DryRun = dryRun != 0
		summary.Run.Reverse = reverse != 0
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Deletions returns every deletion recorded for a run in insertion order.
func (s *Store) Deletions(ctx context.Context, runID string) ([]Deletion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, path, group_key, score, size_mb, status, error
         FROM deletions WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query deletions: %w", err)
	}
	defer rows.Close()

	var deletions []Deletion
	for rows.Next() {
		var del Deletion
		if err := rows.Scan(&del.RunID, &del.Path, &del.GroupKey, &del.Score, &del.SizeMB, &del.Status, &del.Error); err != nil {
			return nil, fmt.Errorf("scan deletion row: %w", err)
		}
		deletions = append(deletions, del)
	}
	return deletions, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
