package multisearch

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/oarkflow/multisearch/suffix"
	"github.com/oarkflow/multisearch/trie"
)

// Span is an end-exclusive range of symbol offsets into a text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// cursor is a state of the product of the suffix automaton and the trie.
// matching is the length of the SAM path walked so far and matched the length
// of the longest dictionary word that is a prefix of it. A nil node means the
// trie side has died.
type cursor[S constraints.Ordered] struct {
	matched  int
	matching int
	state    *suffix.State[S]
	node     *trie.Node[S]
}

// FindWords reports, for every offset of text where a dictionary word starts,
// a span covering the longest such word. Spans come out in no particular order.
func FindWords[S constraints.Ordered](text []S, dict *trie.Trie[S]) ([]Span, error) {
	if err := dict.Err(); err != nil {
		return nil, err
	}
	sam, err := suffix.New(text)
	if err != nil {
		return nil, err
	}
	return walk(sam, dict), nil
}

func FindStrings(text string, dict *trie.Trie[rune]) ([]Span, error) {
	return FindWords([]rune(text), dict)
}

func walk[S constraints.Ordered](sam *suffix.Automaton[S], dict *trie.Trie[S]) []Span {
	n := sam.TextLen()
	finals := sam.Finals()
	var spans []Span
	stack := []cursor[S]{{state: sam.Root(), node: dict.Root()}}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A final SAM state means the path read so far is a suffix of the text,
		// which pins down where it starts.
		if curr.matched > 0 {
			if _, ok := finals[curr.state.ID()]; ok {
				start := n - curr.matching
				spans = append(spans, Span{Start: start, End: start + curr.matched})
			}
		}

		if curr.node == nil {
			for _, e := range curr.state.Edges() {
				stack = append(stack, cursor[S]{
					matched:  curr.matched,
					matching: curr.matching + 1,
					state:    e.Node,
				})
			}
			continue
		}

		for _, e := range curr.state.Edges() {
			next, ok := curr.node.Next(e.Symbol)
			switch {
			case !ok:
				if curr.matched == 0 {
					continue
				}
				stack = append(stack, cursor[S]{
					matched:  curr.matched,
					matching: curr.matching + 1,
					state:    e.Node,
				})
			case next.Final():
				stack = append(stack, cursor[S]{
					matched:  curr.matching + 1,
					matching: curr.matching + 1,
					state:    e.Node,
					node:     next,
				})
			default:
				stack = append(stack, cursor[S]{
					matched:  curr.matched,
					matching: curr.matching + 1,
					state:    e.Node,
					node:     next,
				})
			}
		}
	}
	return spans
}
