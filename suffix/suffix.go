package suffix

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/oarkflow/multisearch/graph"
)

var ErrInvariant = errors.New("suffix automaton invariant violated")

// State is a suffix automaton state. Length is the length of the longest
// string in its right-extension class; Link points to the class of the next
// shorter suffix.
type State[S constraints.Ordered] struct {
	id     int
	length int
	link   *State[S]
	edges  graph.Edges[S, *State[S]]
}

func (s *State[S]) ID() int { return s.id }

func (s *State[S]) Len() int { return s.length }

func (s *State[S]) Link() *State[S] { return s.link }

func (s *State[S]) Edges() graph.Edges[S, *State[S]] { return s.edges }

func (s *State[S]) Next(symbol S) (*State[S], bool) {
	return s.edges.Get(symbol)
}

// Automaton recognises every substring of the text it was built from.
type Automaton[S constraints.Ordered] struct {
	root    *State[S]
	last    *State[S]
	states  []*State[S]
	finals  map[int]struct{}
	textLen int
}

func New[S constraints.Ordered](text []S) (*Automaton[S], error) {
	a := &Automaton[S]{states: make([]*State[S], 0, 2*len(text)+1)}
	a.root = a.addState(0)
	a.last = a.root
	for _, symbol := range text {
		if err := a.Extend(symbol); err != nil {
			return nil, err
		}
	}
	a.finals = a.collectFinals()
	return a, nil
}

func FromString(text string) (*Automaton[rune], error) {
	return New([]rune(text))
}

func (a *Automaton[S]) addState(length int) *State[S] {
	s := &State[S]{id: len(a.states), length: length}
	a.states = append(a.states, s)
	return s
}

func (a *Automaton[S]) cloneState(s *State[S], length int) *State[S] {
	clone := a.addState(length)
	clone.link = s.link
	clone.edges = s.edges.Clone()
	return clone
}

// Extend appends one symbol to the text read so far.
func (a *Automaton[S]) Extend(symbol S) error {
	cur := a.addState(a.last.length + 1)
	p := a.last
	for p != nil && !p.edges.Has(symbol) {
		p.edges.Set(symbol, cur)
		p = p.link
	}
	switch {
	case p == nil:
		cur.link = a.root
	default:
		q, ok := p.edges.Get(symbol)
		if !ok {
			return fmt.Errorf("%w: state %d has no transition for %v", ErrInvariant, p.id, symbol)
		}
		if q.length == p.length+1 {
			cur.link = q
			break
		}
		clone := a.cloneState(q, p.length+1)
		for p != nil {
			next, ok := p.edges.Get(symbol)
			if !ok {
				return fmt.Errorf("%w: state %d lost transition %v during split", ErrInvariant, p.id, symbol)
			}
			if next != q {
				break
			}
			p.edges.Set(symbol, clone)
			p = p.link
		}
		q.link = clone
		cur.link = clone
	}
	a.last = cur
	a.textLen++
	a.finals = nil
	return nil
}

func (a *Automaton[S]) collectFinals() map[int]struct{} {
	finals := make(map[int]struct{})
	for s := a.last; s.link != nil; s = s.link {
		finals[s.id] = struct{}{}
	}
	return finals
}

// Finals returns the ids of the states whose strings are suffixes of the whole
// text. The root (empty suffix) is not included.
func (a *Automaton[S]) Finals() map[int]struct{} {
	if a.finals == nil {
		a.finals = a.collectFinals()
	}
	return a.finals
}

func (a *Automaton[S]) IsFinal(id int) bool {
	_, ok := a.Finals()[id]
	return ok
}

func (a *Automaton[S]) Root() *State[S] { return a.root }

func (a *Automaton[S]) Last() *State[S] { return a.last }

// Size is the number of states, root included.
func (a *Automaton[S]) Size() int { return len(a.states) }

func (a *Automaton[S]) TextLen() int { return a.textLen }

func (a *Automaton[S]) State(id int) (*State[S], bool) {
	if id < 0 || id >= len(a.states) {
		return nil, false
	}
	return a.states[id], true
}

func (a *Automaton[S]) Contains(sub []S) bool {
	s := a.root
	for _, symbol := range sub {
		next, ok := s.Next(symbol)
		if !ok {
			return false
		}
		s = next
	}
	return true
}

// Suffixes lists the labels of all root-to-final paths in symbol order.
func (a *Automaton[S]) Suffixes() [][]S {
	finals := a.Finals()
	var out [][]S
	graph.Walk(a.root, func(path []S, s *State[S]) bool {
		if _, ok := finals[s.id]; ok {
			out = append(out, path)
		}
		return true
	})
	return out
}
