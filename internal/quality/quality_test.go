package quality

import (
	"math"
	"testing"
)

func TestScoreNoKeywords(t *testing.T) {
	scorer := NewScorer(nil)

	tests := []struct {
		name     string
		fragment string
	}{
		{"empty", ""},
		{"plain words", "some.release.notes"},
		{"digits only", "0101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.Score(tt.fragment, 0, false); got != 0 {
				t.Errorf("Score(%q) = %v, want 0", tt.fragment, got)
			}
		})
	}
}

func TestScoreCumulativeKeywords(t *testing.T) {
	scorer := NewScorer(nil)

	// 1080p(5) + bluray(8) + x264(2) = 15
	got := scorer.Score(".1080p.BluRay.x264-GROUP", 0, false)
	if got < 15 {
		t.Errorf("Score(1080p bluray x264) = %v, want >= 15", got)
	}
}

func TestScoreOverlappingKeywords(t *testing.T) {
	scorer := NewScorer(nil)

	// "webdl" contains "web"; both contribute: webdl(7) + web(6) = 13.
	got := scorer.Score("webdl", 0, false)
	if got != 13 {
		t.Errorf("Score(webdl) = %v, want 13", got)
	}
}

func TestScoreSizePenalty(t *testing.T) {
	scorer := NewScorer(nil)

	tests := []struct {
		name   string
		sizeMB float64
		want   float64
	}{
		{"10GB costs one point", 10000, -1.0},
		{"penalty caps at two", 900000, -2.0},
		{"zero size exempt", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score("", tt.sizeMB, true)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(size=%v) = %v, want %v", tt.sizeMB, got, tt.want)
			}
		})
	}
}

func TestScorePenaltyIgnoredByDefault(t *testing.T) {
	scorer := NewScorer(nil)
	if got := scorer.Score("", 50000, false); got != 0 {
		t.Errorf("Score without preferSmaller = %v, want 0", got)
	}
}

func TestNewScorerCopiesLexicon(t *testing.T) {
	lexicon := Lexicon{"custom": 9}
	scorer := NewScorer(lexicon)
	lexicon["custom"] = 0

	if got := scorer.Score("a custom release", 0, false); got != 9 {
		t.Errorf("Score after caller mutation = %v, want 9", got)
	}
}

func TestLexiconMerge(t *testing.T) {
	merged := DefaultLexicon().Merge(map[string]int{"1080p": 7, "NEWTAG": 4})

	if merged["1080p"] != 7 {
		t.Errorf("merged 1080p = %d, want 7", merged["1080p"])
	}
	if merged["newtag"] != 4 {
		t.Errorf("merged newtag = %d, want 4", merged["newtag"])
	}
	if DefaultLexicon()["1080p"] != 5 {
		t.Error("Merge mutated the base lexicon")
	}
}
