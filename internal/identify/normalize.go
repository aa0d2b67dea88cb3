package identify

import (
	"regexp"
	"strings"
)

var (
	leadingArticle = regexp.MustCompile(`^(the|a|an)\s+`)
	separatorRuns  = regexp.MustCompile(`[._\-\s]+`)
	punctuation    = regexp.MustCompile(`[^\w\s]`)
	yearToken      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// NormalizeTitle canonicalizes a raw title fragment for identity comparison:
// lowercase, one leading article stripped, separator runs collapsed to single
// spaces, remaining punctuation removed.
func NormalizeTitle(title string) string {
	title = strings.ToLower(title)
	title = leadingArticle.ReplaceAllString(title, "")
	title = strings.TrimSpace(separatorRuns.ReplaceAllString(title, " "))
	return punctuation.ReplaceAllString(title, "")
}

// stripYearTokens removes stray 4-digit year tokens left inside a normalized
// series name, e.g. "doctor who 2005".
func stripYearTokens(title string) string {
	return strings.TrimSpace(yearToken.ReplaceAllString(title, ""))
}
