// Package dedupe clusters parsed media records into duplicate groups and
// decides which member of each group to keep.
//
// TV records group in a single pass on (series, episode). Movie records go
// through three ordered, mutually exclusive passes: folder co-location,
// exact title+year identity, and optional fuzzy title similarity. An explicit
// claimed set guarantees a record lands in at most one group per run, and all
// group and member ordering follows first-seen discovery order so output is
// deterministic.
package dedupe
