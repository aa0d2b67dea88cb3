package quality

import "strings"

// Lexicon maps a lowercase quality keyword to its score weight.
type Lexicon map[string]int

// DefaultLexicon returns the built-in keyword weights.
func DefaultLexicon() Lexicon {
	return Lexicon{
		// Resolution
		"4k": 8, "2160p": 8, "uhd": 8,
		"1440p": 6, "2k": 6,
		"1080p": 5, "fhd": 5,
		"720p": 4, "hd": 4,
		"480p": 3, "sd": 2,
		"360p": 1, "msd": 1,
		// Source
		"remux":  10,
		"bluray": 8, "blu-ray": 8, "bdrip": 8, "brrip": 6,
		"webdl": 7, "web-dl": 7, "web": 6, "webrip": 5,
		"hdtv": 4, "pdtv": 3, "dvdrip": 3, "dvd": 3,
		"cam": 1, "ts": 1, "tc": 1,
		// Codec
		"av1":  5,
		"x265": 3, "h265": 3, "hevc": 3,
		"x264": 2, "h264": 2, "avc": 2,
		"xvid": 1, "divx": 1,
		// Audio
		"atmos": 3, "truehd": 3, "dts-hd": 3, "dts-x": 3,
		"dts": 2, "ac3": 1, "aac": 1,
		// Release flags
		"repack": 1, "proper": 1, "real": 1,
		"extended": 1, "uncut": 1, "directors": 1,
		"hdr": 2, "hdr10": 2, "dolbyvision": 3, "dv": 3,
		// Editions
		"imax": 2, "criterion": 2, "remastered": 1,
		"anniversary": 1, "collectors": 1, "special": 1,
		"theatrical": 0, "director": 1,
	}
}

// Scorer computes quality scores against a fixed lexicon.
type Scorer struct {
	lexicon Lexicon
}

// NewScorer copies the provided lexicon so later mutation of the caller's map
// cannot change scoring. A nil lexicon falls back to DefaultLexicon.
func NewScorer(lexicon Lexicon) *Scorer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	copied := make(Lexicon, len(lexicon))
	for keyword, weight := range lexicon {
		copied[strings.ToLower(keyword)] = weight
	}
	return &Scorer{lexicon: copied}
}

// sizePenaltyCap bounds the prefer-smaller penalty; a 10 GB file costs one
// point and no file costs more than two.
const sizePenaltyCap = 2.0

// Score sums the weight of every lexicon keyword occurring as a substring of
// the fragment. When preferSmaller is set and sizeMB is positive, a capped
// penalty of sizeMB/10000 is subtracted.
func (s *Scorer) Score(fragment string, sizeMB float64, preferSmaller bool) float64 {
	lowered := strings.ToLower(fragment)
	var score float64
	for keyword, weight := range s.lexicon {
		if strings.Contains(lowered, keyword) {
			score += float64(weight)
		}
	}
	if preferSmaller && sizeMB > 0 {
		penalty := sizeMB / 10000
		if penalty > sizePenaltyCap {
			penalty = sizePenaltyCap
		}
		score -= penalty
	}
	return score
}

// Merge returns a copy of the lexicon with the override weights applied on
// top. Unknown keywords in overrides become new entries.
func (l Lexicon) Merge(overrides map[string]int) Lexicon {
	merged := make(Lexicon, len(l)+len(overrides))
	for keyword, weight := range l {
		merged[keyword] = weight
	}
	for keyword, weight := range overrides {
		merged[strings.ToLower(strings.TrimSpace(keyword))] = weight
	}
	return merged
}
