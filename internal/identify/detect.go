package identify

// Kind distinguishes the two supported content layouts.
type Kind int

const (
	KindMovie Kind = iota
	KindTV
)

func (k Kind) String() string {
	if k == KindTV {
		return "tv"
	}
	return "movie"
}

// DetectSampleSize caps how many candidates DetectKind inspects. Callers
// gathering stems for detection need not collect more than this.
const DetectSampleSize = 20

// DetectKind guesses the dominant content kind of a library by sampling
// filename stems: when more stems carry an episode marker than not, the
// library is treated as TV, otherwise as movies.
func DetectKind(stems []string) Kind {
	if len(stems) > DetectSampleSize {
		stems = stems[:DetectSampleSize]
	}
	var tv int
	for _, stem := range stems {
		if _, ok := ParseEpisode(stem); ok {
			tv++
		}
	}
	if tv > len(stems)-tv {
		return KindTV
	}
	return KindMovie
}
