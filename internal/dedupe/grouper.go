package dedupe

import (
	"path/filepath"

	"culler/internal/textutil"
)

// DefaultFuzzyThreshold is the similarity ratio at or above which two movie
// titles are considered the same release during the fuzzy pass.
const DefaultFuzzyThreshold = 0.85

// GrouperOptions tunes the movie grouping passes.
type GrouperOptions struct {
	// Fuzzy enables the third, similarity-based pass.
	Fuzzy bool
	// FuzzyThreshold overrides DefaultFuzzyThreshold when positive.
	FuzzyThreshold float64
}

// GroupEpisodes clusters TV records by (series, episode) and returns every
// cluster with at least two members, in first-seen order.
func GroupEpisodes(records []*Record) []Group {
	type episodeKey struct {
		series  string
		episode string
	}

	var order []episodeKey
	byKey := make(map[episodeKey][]*Record)
	for _, rec := range records {
		key := episodeKey{series: rec.Series, episode: rec.Episode}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], rec)
	}

	var groups []Group
	for _, key := range order {
		members := byKey[key]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, Group{
			Key:     key.series + " " + key.episode,
			Members: members,
		})
	}
	return groups
}

// GroupMovies clusters movie records through three ordered passes: folder
// co-location, exact identity, and (optionally) fuzzy title similarity. Each
// pass only considers records not claimed by an earlier pass, so a record
// belongs to at most one group.
func GroupMovies(records []*Record, opts GrouperOptions) []Group {
	claimed := make(map[*Record]bool, len(records))

	groups := folderPass(records, claimed)
	groups = append(groups, identityPass(records, claimed)...)
	if opts.Fuzzy {
		threshold := opts.FuzzyThreshold
		if threshold <= 0 {
			threshold = DefaultFuzzyThreshold
		}
		groups = append(groups, fuzzyPass(records, claimed, threshold)...)
	}
	return groups
}

// folderPass groups by parent folder. Two or more surviving files in one
// folder are treated as duplicates regardless of title similarity.
func folderPass(records []*Record, claimed map[*Record]bool) []Group {
	var order []string
	byFolder := make(map[string][]*Record)
	for _, rec := range records {
		if _, seen := byFolder[rec.Folder]; !seen {
			order = append(order, rec.Folder)
		}
		byFolder[rec.Folder] = append(byFolder[rec.Folder], rec)
	}

	var groups []Group
	for _, folder := range order {
		members := byFolder[folder]
		if len(members) < 2 {
			continue
		}
		claim(claimed, members)
		groups = append(groups, Group{
			Key:     "FOLDER: " + filepath.Base(folder),
			Members: members,
		})
	}
	return groups
}

// identityPass groups unclaimed records by exact movie identity (title+year).
func identityPass(records []*Record, claimed map[*Record]bool) []Group {
	var order []string
	byID := make(map[string][]*Record)
	for _, rec := range records {
		if claimed[rec] {
			continue
		}
		if _, seen := byID[rec.MovieID]; !seen {
			order = append(order, rec.MovieID)
		}
		byID[rec.MovieID] = append(byID[rec.MovieID], rec)
	}

	var groups []Group
	for _, id := range order {
		members := byID[id]
		if len(members) < 2 {
			continue
		}
		claim(claimed, members)
		groups = append(groups, Group{
			Key:     "TITLE: " + id,
			Members: members,
		})
	}
	return groups
}

// fuzzyPass greedily clusters the remaining records by title similarity.
// A candidate joins a seed's cluster when the similarity ratio reaches the
// threshold and the year guard passes. The both-years-absent case permits a
// match, which can conflate unrelated undated titles; that trade-off is kept
// deliberately in favor of catching punctuation and OCR-style drift.
func fuzzyPass(records []*Record, claimed map[*Record]bool, threshold float64) []Group {
	assigned := make(map[*Record]bool)

	var groups []Group
	for _, seed := range records {
		if claimed[seed] || assigned[seed] {
			continue
		}
		cluster := []*Record{seed}
		assigned[seed] = true

		for _, candidate := range records {
			if candidate == seed || claimed[candidate] || assigned[candidate] {
				continue
			}
			if !yearsCompatible(seed.Year, candidate.Year) {
				continue
			}
			if textutil.Similarity(seed.Title, candidate.Title) < threshold {
				continue
			}
			cluster = append(cluster, candidate)
			assigned[candidate] = true
		}

		if len(cluster) < 2 {
			continue
		}
		claim(claimed, cluster)
		key := "FUZZY: " + seed.Title
		if seed.Year != "" {
			key += " (" + seed.Year + ")"
		}
		groups = append(groups, Group{Key: key, Members: cluster})
	}
	return groups
}

// yearsCompatible permits a fuzzy match when both years are absent or both
// are present and equal. A year on only one side blocks the match.
func yearsCompatible(a, b string) bool {
	if a == "" && b == "" {
		return true
	}
	return a != "" && b != "" && a == b
}

func claim(claimed map[*Record]bool, members []*Record) {
	for _, rec := range members {
		claimed[rec] = true
	}
}
