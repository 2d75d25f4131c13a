package multisearch

import (
	"slices"
	"sort"
)

// Spans orders by start ascending, then by end descending.
type Spans []Span

func (s Spans) Len() int { return len(s) }

func (s Spans) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s Spans) Less(i, j int) bool {
	if s[i].Start != s[j].Start {
		return s[i].Start < s[j].Start
	}
	return s[i].End > s[j].End
}

// RefineMatches keeps a set of pairwise non-overlapping spans, ascending by
// start. Spans are taken left to right and a span is dropped when it starts
// before the end of the last kept one, so the leftmost span wins an overlap
// and the longest wins among spans with the same start. With inPlace the
// input's backing array is reordered and reused; use the returned slice.
func RefineMatches(spans []Span, inPlace bool) []Span {
	out := spans
	if !inPlace {
		out = slices.Clone(spans)
	}
	if len(out) <= 1 {
		return out
	}
	sort.Sort(Spans(out))
	kept := 1
	for _, s := range out[1:] {
		if s.Start < out[kept-1].End {
			continue
		}
		out[kept] = s
		kept++
	}
	return out[:kept]
}
