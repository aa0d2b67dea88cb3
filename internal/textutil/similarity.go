package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Similarity returns a case-insensitive character-level similarity ratio in
// [0, 1]. Equal strings score 1.0 and the function is symmetric in its
// arguments. The ratio is derived from the Levenshtein edit distance
// normalized by the longer string's length.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}

	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1.0
	}

	distance := fuzzy.LevenshteinDistance(a, b)
	return 1.0 - float64(distance)/float64(longest)
}
