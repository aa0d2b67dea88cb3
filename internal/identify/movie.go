package identify

import (
	"path/filepath"
	"regexp"
	"strings"
)

// movieYear matches a plausible release year token.
var movieYear = regexp.MustCompile(`\b((19|20)\d{2})\b`)

// titleIndicators mark where release-quality text begins when a filename
// carries no year token.
var titleIndicators = []string{
	"1080p", "720p", "480p", "4k", "2160p",
	"bluray", "webrip", "webdl", "hdtv", "x264", "x265",
}

// Movie is the best-effort canonical identity of a movie file.
type Movie struct {
	Title      string // normalized title
	Year       string // empty when no year token was found
	Quality    string // raw stem text following the identity boundary
	Folder     string // parent directory path
	FromFolder bool   // identity derived from the folder name rather than the stem
}

// ID returns the identity key, "title" or "title (year)". The same string is
// used as the human-readable group label.
func (m Movie) ID() string {
	if m.Year == "" {
		return m.Title
	}
	return m.Title + " (" + m.Year + ")"
}

// ParseMovie extracts a movie identity from a file path. The parent folder
// name is preferred as the title source when it contains a year token and is
// non-trivially long, since one-movie-per-folder libraries name folders more
// reliably than release groups name files. The quality fragment always comes
// from the file stem: co-located copies share the folder name, so only the
// stems can tell a 1080p copy from a 720p one. ParseMovie never fails:
// malformed names yield an empty or garbage title that downstream grouping
// treats as its own cluster.
func ParseMovie(path string) Movie {
	folder := filepath.Dir(path)
	folderName := filepath.Base(folder)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	source := stem
	fromFolder := false
	if movieYear.MatchString(folderName) && len(strings.TrimSpace(folderName)) > 8 {
		source = folderName
		fromFolder = true
	}

	titleEnd, _, year := identityBoundary(source)
	_, qualityStart, _ := identityBoundary(stem)

	return Movie{
		Title:      NormalizeTitle(source[:titleEnd]),
		Year:       year,
		Quality:    stem[qualityStart:],
		Folder:     folder,
		FromFolder: fromFolder,
	}
}

// identityBoundary splits s at its first year token, or failing that at the
// earliest fixed quality indicator. Title text ends at the boundary and
// quality text starts after it; year is empty when no token was found.
func identityBoundary(s string) (titleEnd, qualityStart int, year string) {
	if loc := movieYear.FindStringIndex(s); loc != nil {
		return loc[0], loc[1], s[loc[0]:loc[1]]
	}
	titleEnd = len(s)
	lowered := strings.ToLower(s)
	for _, indicator := range titleIndicators {
		if idx := strings.Index(lowered, indicator); idx >= 0 && idx < titleEnd {
			titleEnd = idx
		}
	}
	return titleEnd, titleEnd, ""
}
