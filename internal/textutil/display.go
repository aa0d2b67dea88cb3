package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// DisplayTitle renders a normalized lowercase title for human-facing output.
func DisplayTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "(unknown)"
	}
	return titleCaser.String(title)
}
