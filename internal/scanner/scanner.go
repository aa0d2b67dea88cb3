package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"culler/internal/logging"
)

const bytesPerMB = 1024 * 1024

// Candidate is one media file that survived every scan filter.
type Candidate struct {
	Path   string
	SizeMB float64
}

// Options controls which files a scan yields.
type Options struct {
	// Extensions lists eligible file extensions including the dot.
	Extensions []string
	// ExtrasFolders are folder-name fragments whose direct children are
	// skipped (bonus content, samples) when IgnoreExtras is set.
	ExtrasFolders []string
	IgnoreExtras  bool
	// MinSizeMB drops files below the threshold; zero disables the filter.
	MinSizeMB float64
	// Include and Exclude are regular expressions matched case-insensitively
	// against the file's base name. Include, when non-empty, must match;
	// any Exclude match drops the file.
	Include []string
	Exclude []string
}

// Scanner walks library trees according to a fixed set of filters.
type Scanner struct {
	extensions map[string]struct{}
	extras     []string
	include    []*regexp.Regexp
	exclude    []*regexp.Regexp
	minSizeMB  float64
	logger     *slog.Logger
}

// New validates the options and builds a Scanner. An invalid include or
// exclude pattern is a fatal configuration error: refusing to run beats
// silently matching nothing.
func New(opts Options, logger *slog.Logger) (*Scanner, error) {
	extensions := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extensions[strings.ToLower(strings.TrimSpace(ext))] = struct{}{}
	}

	include, err := compilePatterns(opts.Include)
	if err != nil {
		return nil, fmt.Errorf("include pattern: %w", err)
	}
	exclude, err := compilePatterns(opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("exclude pattern: %w", err)
	}

	var extras []string
	if opts.IgnoreExtras {
		for _, name := range opts.ExtrasFolders {
			extras = append(extras, strings.ToLower(strings.TrimSpace(name)))
		}
	}

	return &Scanner{
		extensions: extensions,
		extras:     extras,
		include:    include,
		exclude:    exclude,
		minSizeMB:  opts.MinSizeMB,
		logger:     logging.NewComponentLogger(logger, "scanner"),
	}, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Scan walks root and returns every surviving candidate in walk order. The
// root must exist; anything below it that cannot be read is skipped with a
// debug log instead of failing the scan.
func (s *Scanner) Scan(root string) ([]Candidate, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}

	var candidates []Candidate
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.logger.Debug("skipping unreadable entry", logging.String("path", path), logging.Error(walkErr))
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if _, ok := s.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		if s.inExtrasFolder(filepath.Base(filepath.Dir(path))) {
			return nil
		}
		sizeMB := s.SizeMB(path)
		if s.minSizeMB > 0 && sizeMB < s.minSizeMB {
			return nil
		}
		if !s.matchesFilters(filepath.Base(path)) {
			return nil
		}
		candidates = append(candidates, Candidate{Path: path, SizeMB: sizeMB})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return candidates, nil
}

// Sample returns up to limit media-file stems from root, ignoring every
// filter except the extension set. Used for content-kind detection.
func (s *Scanner) Sample(root string, limit int) []string {
	var stems []string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil || entry.IsDir() {
			return nil
		}
		if _, ok := s.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		base := filepath.Base(path)
		stems = append(stems, strings.TrimSuffix(base, filepath.Ext(base)))
		if len(stems) >= limit {
			return filepath.SkipAll
		}
		return nil
	})
	return stems
}

// SizeMB reports the file size in megabytes, or 0 when the file cannot be
// statted. Access failures degrade scoring quality instead of aborting.
func (s *Scanner) SizeMB(path string) float64 {
	info, err := os.Stat(path)
	if err != nil {
		s.logger.Debug("size lookup failed", logging.String("path", path), logging.Error(err))
		return 0
	}
	return float64(info.Size()) / bytesPerMB
}

func (s *Scanner) inExtrasFolder(folderName string) bool {
	if len(s.extras) == 0 {
		return false
	}
	lowered := strings.ToLower(folderName)
	for _, fragment := range s.extras {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}

func (s *Scanner) matchesFilters(baseName string) bool {
	if len(s.include) > 0 {
		matched := false
		for _, re := range s.include {
			if re.MatchString(baseName) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, re := range s.exclude {
		if re.MatchString(baseName) {
			return false
		}
	}
	return true
}
