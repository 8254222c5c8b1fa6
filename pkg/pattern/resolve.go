package pattern

import "sort"

// Resolve orders and filters raw matches into the non-overlapping set
// the builder consumes.
//
// Matches are sorted by start ascending, then end descending (the
// longer match wins at the same start), then priority descending; ties
// beyond that keep collection order. A greedy sweep keeps a match only
// if it starts at or after the end of the last kept match.
//
// The greedy sweep is not globally optimal for total coverage. It is
// the authoritative policy: a shorter match that merely starts no
// earlier must not fragment a longer or higher-priority one, and the
// thematic-break versus emphasis disambiguation depends on this exact
// tie-break.
func Resolve(matches []RawMatch) []RawMatch {
	if len(matches) == 0 {
		return nil
	}

	sorted := make([]RawMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End > b.End
		}
		return a.Priority > b.Priority
	})

	kept := sorted[:0]
	lastEnd := 0
	for _, m := range sorted {
		if m.Start < lastEnd {
			continue
		}
		kept = append(kept, m)
		lastEnd = m.End
	}
	return kept
}
