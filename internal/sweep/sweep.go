package sweep

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"culler/internal/logging"
)

// Failure is one file that could not be removed.
type Failure struct {
	Path string
	Err  error
}

// Result reports what happened while removing one deletion candidate.
type Result struct {
	Target string
	// Removed lists the target and any sidecars that were (or, in dry-run,
	// would have been) deleted or trashed.
	Removed  []string
	Failures []Failure
}

// OK reports whether every file was removed.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

// Options controls how a Sweeper disposes of files.
type Options struct {
	// DryRun only reports what would be removed.
	DryRun bool
	// TrashDir, when set, moves files there instead of deleting them. Name
	// collisions inside the trash get a numeric suffix.
	TrashDir string
}

// Sweeper deletes (or trashes) media files together with sidecars sharing
// their stem.
type Sweeper struct {
	dryRun   bool
	trashDir string
	logger   *slog.Logger
}

// New builds a Sweeper.
func New(opts Options, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		dryRun:   opts.DryRun,
		trashDir: opts.TrashDir,
		logger:   logging.NewComponentLogger(logger, "sweep"),
	}
}

// Remove disposes of the media file at path plus sidecar files (.srt, .nfo,
// artwork and the like) sharing its filename stem in the same folder. An
// unreadable parent directory simply means no sidecars are found. Each file
// is attempted independently; failures are collected, not fatal.
func (s *Sweeper) Remove(path string) Result {
	result := Result{Target: path}

	for _, file := range append([]string{path}, s.sidecars(path)...) {
		if s.dryRun {
			s.logger.Info("would delete", logging.String("path", file))
			result.Removed = append(result.Removed, file)
			continue
		}
		if err := s.dispose(file); err != nil {
			s.logger.Warn("delete failed", logging.String("path", file), logging.Error(err))
			result.Failures = append(result.Failures, Failure{Path: file, Err: err})
			continue
		}
		result.Removed = append(result.Removed, file)
	}
	return result
}

func (s *Sweeper) dispose(path string) error {
	if s.trashDir == "" {
		if err := os.Remove(path); err != nil {
			return err
		}
		s.logger.Info("deleted", logging.String("path", path))
		return nil
	}

	if err := os.MkdirAll(s.trashDir, 0o755); err != nil {
		return fmt.Errorf("ensure trash dir: %w", err)
	}
	dest := s.trashTarget(filepath.Base(path))
	if err := moveFile(path, dest); err != nil {
		return err
	}
	s.logger.Info("trashed", logging.String("path", path), logging.String("dest", dest))
	return nil
}

// trashTarget picks a free name inside the trash directory, suffixing the
// stem with a counter when the name is taken.
func (s *Sweeper) trashTarget(name string) string {
	dest := filepath.Join(s.trashDir, name)
	if _, err := os.Stat(dest); err != nil {
		return dest
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		dest = filepath.Join(s.trashDir, fmt.Sprintf("%s.%d%s", stem, i, ext))
		if _, err := os.Stat(dest); err != nil {
			return dest
		}
	}
}

// moveFile renames src to dest, falling back to copy-and-remove when the
// rename fails (trash on a different filesystem).
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dest)
		return err
	}
	return os.Remove(src)
}

// sidecars lists sibling files that share the target's stem.
func (s *Sweeper) sidecars(path string) []string {
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("sidecar listing failed", logging.String("dir", dir), logging.Error(err))
		return nil
	}

	stem := fileStem(filepath.Base(path))
	var found []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == filepath.Base(path) {
			continue
		}
		if fileStem(entry.Name()) == stem {
			found = append(found, filepath.Join(dir, entry.Name()))
		}
	}
	return found
}

func fileStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
