package dedupe

import "culler/internal/identify"

// Record is one surviving media file with its parsed identity and score.
// Records are created once during parsing, scored once, and read-only while
// grouping; only selection reorders group membership.
type Record struct {
	Path   string
	Kind   identify.Kind
	Folder string // parent directory path

	// TV identity
	Series  string
	Episode string

	// Movie identity
	Title   string
	Year    string
	MovieID string

	Quality string
	Score   float64
	SizeMB  float64
}

// Group is a cluster of records believed to hold the same content, tagged
// with the detection strategy that produced it.
type Group struct {
	Key     string
	Members []*Record
}
