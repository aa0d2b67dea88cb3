package identify

import (
	"fmt"
	"regexp"
	"strconv"
)

// episodeMarker matches SxxEyy markers, optionally extended with a second
// episode number ("S02E05E06" or "S02E05-E06") for multi-episode files.
var episodeMarker = regexp.MustCompile(`(?i)S(\d{1,2})E(\d{2,})(?:-?E(\d{2,}))?`)

// Episode is the canonical identity of a TV episode file.
type Episode struct {
	Series  string // normalized series name
	ID      string // "S01E02" or "S01E02-E03"
	Quality string // raw text following the marker
	Multi   bool
}

// ParseEpisode extracts an episode identity from a filename stem. The second
// return value is false when the stem carries no recognizable marker; such
// files cannot form a TV identity and must be skipped.
func ParseEpisode(stem string) (Episode, bool) {
	loc := episodeMarker.FindStringSubmatchIndex(stem)
	if loc == nil {
		return Episode{}, false
	}

	season, _ := strconv.Atoi(stem[loc[2]:loc[3]])
	start, _ := strconv.Atoi(stem[loc[4]:loc[5]])
	end := start
	if loc[6] >= 0 {
		end, _ = strconv.Atoi(stem[loc[6]:loc[7]])
	}

	id := fmt.Sprintf("S%02dE%02d", season, start)
	if end != start {
		id = fmt.Sprintf("S%02dE%02d-E%02d", season, start, end)
	}

	series := stripYearTokens(NormalizeTitle(stem[:loc[0]]))

	return Episode{
		Series:  series,
		ID:      id,
		Quality: stem[loc[1]:],
		Multi:   end != start,
	}, true
}
