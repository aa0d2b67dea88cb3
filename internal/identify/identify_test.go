package identify

import "testing"

func TestParseEpisode(t *testing.T) {
	tests := []struct {
		name        string
		stem        string
		wantSeries  string
		wantID      string
		wantQuality string
		wantMulti   bool
	}{
		{
			name:        "standard release name",
			stem:        "Breaking.Bad.S01E01.1080p.BluRay.x264-GROUP",
			wantSeries:  "breaking bad",
			wantID:      "S01E01",
			wantQuality: ".1080p.BluRay.x264-GROUP",
		},
		{
			name:        "lowercase marker",
			stem:        "the wire s02e03 720p",
			wantSeries:  "wire",
			wantID:      "S02E03",
			wantQuality: " 720p",
		},
		{
			name:       "multi episode with dash",
			stem:       "Show.Name.S02E05-E06.WEBRip",
			wantSeries: "show name",
			wantID:     "S02E05-E06",
			wantMulti:  true,

			wantQuality: ".WEBRip",
		},
		{
			name:        "multi episode without dash",
			stem:        "Show.Name.S02E05E06.WEBRip",
			wantSeries:  "show name",
			wantID:      "S02E05-E06",
			wantMulti:   true,
			wantQuality: ".WEBRip",
		},
		{
			name:        "year stripped from series",
			stem:        "Doctor Who 2005 S01E01 HDTV",
			wantSeries:  "doctor who",
			wantID:      "S01E01",
			wantQuality: " HDTV",
		},
		{
			name:        "single digit season pads",
			stem:        "Archer.S3E010.WEB",
			wantSeries:  "archer",
			wantID:      "S03E10",
			wantQuality: ".WEB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, ok := ParseEpisode(tt.stem)
			if !ok {
				t.Fatalf("ParseEpisode(%q) failed, want success", tt.stem)
			}
			if ep.Series != tt.wantSeries {
				t.Errorf("Series = %q, want %q", ep.Series, tt.wantSeries)
			}
			if ep.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", ep.ID, tt.wantID)
			}
			if ep.Quality != tt.wantQuality {
				t.Errorf("Quality = %q, want %q", ep.Quality, tt.wantQuality)
			}
			if ep.Multi != tt.wantMulti {
				t.Errorf("Multi = %v, want %v", ep.Multi, tt.wantMulti)
			}
		})
	}
}

func TestParseEpisodeNoMarker(t *testing.T) {
	stems := []string{
		"Inception.2010.1080p.BluRay",
		"random notes",
		"",
	}
	for _, stem := range stems {
		if _, ok := ParseEpisode(stem); ok {
			t.Errorf("ParseEpisode(%q) succeeded, want failure", stem)
		}
	}
}

func TestParseEpisodeIdempotent(t *testing.T) {
	stem := "Breaking.Bad.S01E01.1080p.BluRay.x264-GROUP"
	first, _ := ParseEpisode(stem)
	second, _ := ParseEpisode(stem)
	if first != second {
		t.Errorf("repeated parses differ: %+v vs %+v", first, second)
	}
}

func TestParseMovieFolderPreferred(t *testing.T) {
	m := ParseMovie("/media/movies/Inception (2010)/Inception.2010.1080p.BluRay.mkv")

	if !m.FromFolder {
		t.Error("expected folder-derived identity")
	}
	if m.Title != "inception" {
		t.Errorf("Title = %q, want %q", m.Title, "inception")
	}
	if m.Year != "2010" {
		t.Errorf("Year = %q, want %q", m.Year, "2010")
	}
	if m.ID() != "inception (2010)" {
		t.Errorf("ID = %q, want %q", m.ID(), "inception (2010)")
	}
	if m.Quality != ".1080p.BluRay" {
		t.Errorf("Quality = %q, want %q", m.Quality, ".1080p.BluRay")
	}
}

func TestParseMovieFolderIdentityStemQuality(t *testing.T) {
	// Folder supplies the identity, but the quality fragment must come from
	// the stem: two copies in one folder differ only by their filenames.
	copies := map[string]string{
		"/m/Inception (2010)/Inception.2010.1080p.mkv": ".1080p",
		"/m/Inception (2010)/Inception.2010.720p.mkv":  ".720p",
		"/m/Dark City (1998)/Dark.City.1080p.mkv":      "1080p",
	}
	for path, wantQuality := range copies {
		m := ParseMovie(path)
		if !m.FromFolder {
			t.Errorf("ParseMovie(%q): expected folder-derived identity", path)
		}
		if m.Quality != wantQuality {
			t.Errorf("ParseMovie(%q).Quality = %q, want %q", path, m.Quality, wantQuality)
		}
	}
}

func TestParseMovieShortFolderFallsBack(t *testing.T) {
	// "x (19)" folder is too short even though it has digits; stem wins.
	m := ParseMovie("/media/m/The.Matrix.1999.1080p.BluRay.x264.mkv")

	if m.FromFolder {
		t.Error("expected stem-derived identity for short folder name")
	}
	if m.Title != "the matrix" {
		t.Errorf("Title = %q, want %q", m.Title, "the matrix")
	}
	if m.Year != "1999" {
		t.Errorf("Year = %q, want %q", m.Year, "1999")
	}
	if m.Quality != ".1080p.BluRay.x264" {
		t.Errorf("Quality = %q, want %q", m.Quality, ".1080p.BluRay.x264")
	}
}

func TestParseMovieNoYearTruncatesAtIndicator(t *testing.T) {
	m := ParseMovie("/media/m/Some Film 1080p WEBRip.mkv")

	if m.Title != "some film" {
		t.Errorf("Title = %q, want %q", m.Title, "some film")
	}
	if m.Year != "" {
		t.Errorf("Year = %q, want empty", m.Year)
	}
	if m.ID() != "some film" {
		t.Errorf("ID = %q, want %q", m.ID(), "some film")
	}
}

func TestParseMovieGarbageAccepted(t *testing.T) {
	m := ParseMovie("/media/m/####.mkv")
	if m.ID() != m.Title {
		t.Errorf("ID = %q, want bare title", m.ID())
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Matrix", "matrix"},
		// Dotted names keep the article: stripping happens before separator
		// collapse, matching identity keys produced from spaced names only.
		{"A.Quiet.Place", "a quiet place"},
		{"An Affair", "affair"},
		{"Snake__Eyes--2021", "snake eyes 2021"},
		{"What's Up", "whats up"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectKind(t *testing.T) {
	tv := []string{
		"Show.S01E01.720p",
		"Show.S01E02.720p",
		"Show.S01E03.720p",
	}
	if got := DetectKind(tv); got != KindTV {
		t.Errorf("DetectKind(tv sample) = %v, want tv", got)
	}

	movies := []string{
		"Inception.2010.1080p",
		"Heat.1995.720p",
	}
	if got := DetectKind(movies); got != KindMovie {
		t.Errorf("DetectKind(movie sample) = %v, want movie", got)
	}

	if got := DetectKind(nil); got != KindMovie {
		t.Errorf("DetectKind(empty) = %v, want movie default", got)
	}
}
