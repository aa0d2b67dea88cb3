package dedupe

import "sort"

// Resolve orders the group's members ascending by score (stable, so ties keep
// discovery order) and partitions them into one keep and the rest. The
// default keeps the highest-scoring member; reverse keeps the lowest. Groups
// always hold at least two members by construction.
func Resolve(group *Group, reverse bool) (keep *Record, drop []*Record) {
	sort.SliceStable(group.Members, func(i, j int) bool {
		return group.Members[i].Score < group.Members[j].Score
	})

	if reverse {
		return group.Members[0], group.Members[1:]
	}
	last := len(group.Members) - 1
	return group.Members[last], group.Members[:last]
}
