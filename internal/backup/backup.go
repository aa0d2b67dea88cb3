package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"culler/internal/dedupe"
	"culler/internal/identify"
)

// Entry captures one deletion candidate.
type Entry struct {
	Path   string  `json:"path"`
	Score  float64 `json:"score"`
	SizeMB float64 `json:"size_mb"`

	Series  string `json:"series,omitempty"`
	Episode string `json:"episode,omitempty"`

	MovieID string `json:"movie_id,omitempty"`
	Title   string `json:"title,omitempty"`
	Year    string `json:"year,omitempty"`
}

// Manifest is the on-disk backup document.
type Manifest struct {
	Timestamp string  `json:"timestamp"`
	Files     []Entry `json:"files"`
}

// Write persists an indented JSON manifest for the given records.
func Write(path string, records []*dedupe.Record) error {
	manifest := Manifest{
		Timestamp: time.Now().Format(time.RFC3339),
		Files:     make([]Entry, 0, len(records)),
	}
	for _, rec := range records {
		entry := Entry{
			Path:   rec.Path,
			Score:  rec.Score,
			SizeMB: rec.SizeMB,
		}
		if rec.Kind == identify.KindTV {
			entry.Series = rec.Series
			entry.Episode = rec.Episode
		} else {
			entry.MovieID = rec.MovieID
			entry.Title = rec.Title
			entry.Year = rec.Year
		}
		manifest.Files = append(manifest.Files, entry)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup %s: %w", path, err)
	}
	return nil
}
