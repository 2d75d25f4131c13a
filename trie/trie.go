package trie

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/oarkflow/multisearch/graph"
	"github.com/oarkflow/multisearch/lib"
)

var ErrInvariant = errors.New("trie invariant violated")

// Trie is a minimal acyclic automaton over a dictionary. It stays minimal
// after every AddWord and RemoveWord. Mutations must not run concurrently
// with each other or with readers.
type Trie[S constraints.Ordered] struct {
	root     *Node[S]
	states   []*Node[S]
	pool     *lib.Pool[*Node[S]]
	register *register[S]
	words    int
	err      error
}

func New[S constraints.Ordered]() *Trie[S] {
	t := &Trie[S]{}
	t.init()
	return t
}

func Build[S constraints.Ordered](words [][]S) (*Trie[S], error) {
	t := New[S]()
	if err := t.Refill(words); err != nil {
		return nil, err
	}
	return t, nil
}

func FromStrings(words []string) (*Trie[rune], error) {
	return Build(lib.Runes(words))
}

func (t *Trie[S]) init() {
	if t.pool == nil {
		t.pool = newNodePool[S]()
		t.register = newRegister[S]()
	}
	for _, n := range t.states {
		n.reset()
		t.pool.Put(n)
	}
	clear(t.states)
	t.states = t.states[:0]
	t.register.clear()
	t.words = 0
	t.err = nil
	t.root = t.addNode()
}

// Refill drops every word and rebuilds the automaton from words.
func (t *Trie[S]) Refill(words [][]S) error {
	t.init()
	for _, word := range words {
		if err := t.AddWord(word); err != nil {
			return err
		}
	}
	return nil
}

func (t *Trie[S]) AddWord(word []S) error {
	return t.process(word, false)
}

func (t *Trie[S]) RemoveWord(word []S) error {
	return t.process(word, true)
}

func (t *Trie[S]) addNode() *Node[S] {
	n := t.pool.Get()
	n.reset()
	n.id = len(t.states)
	t.states = append(t.states, n)
	return n
}

func (t *Trie[S]) cloneNode(n *Node[S]) *Node[S] {
	clone := t.addNode()
	clone.final = n.final
	clone.edges = append(clone.edges, n.edges...)
	for _, e := range clone.edges {
		e.Node.inDegree++
	}
	return clone
}

// release reclaims n, which must have no incoming edges, together with every
// target left unreferenced by it.
func (t *Trie[S]) release(n *Node[S]) {
	stack := []*Node[S]{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.register.remove(curr)
		for _, e := range curr.edges {
			e.Node.inDegree--
			if e.Node.inDegree == 0 {
				stack = append(stack, e.Node)
			}
		}
		t.compact(curr)
	}
}

// compact fills the slot of n with the last node so the table stays dense.
func (t *Trie[S]) compact(n *Node[S]) {
	id, last := n.id, len(t.states)-1
	moved := t.states[last]
	t.states[id] = moved
	moved.id = id
	t.states[last] = nil
	t.states = t.states[:last]
	n.reset()
	n.id = -1
	t.pool.Put(n)
}

// process walks word from the root. Nodes on an unshared prefix are taken out
// of the register because they are about to change; from the first shared
// node on, the path is cloned so other words keep their nodes. The chain is
// then reconciled bottom-up against the register.
func (t *Trie[S]) process(word []S, remove bool) error {
	if t.err != nil {
		return t.err
	}
	last := t.root
	chain := make([]*Node[S], 1, len(word)+1)
	chain[0] = last
	cloning := false
	i := 0
walk:
	for ; i < len(word); i++ {
		symbol := word[i]
		child, ok := last.Next(symbol)
		switch {
		case ok:
			if child.inDegree > 1 {
				cloning = true
			}
			if cloning {
				clone := t.cloneNode(child)
				setEdge(last, symbol, clone)
				child = clone
			} else {
				t.register.remove(child)
			}
		case remove:
			break walk
		default:
			child = t.addNode()
			setEdge(last, symbol, child)
		}
		last = child
		chain = append(chain, last)
	}

	switch {
	case !remove:
		if !last.final {
			last.final = true
			t.words++
		}
	case i == len(word) && last.final:
		last.final = false
		t.words--
	}

	for j := len(chain) - 2; j >= 0; j-- {
		if err := t.reconcile(chain[j], word[j]); err != nil {
			t.err = err
			return err
		}
	}
	return nil
}

// reconcile replaces parent's child for symbol by its registered equivalent,
// or registers it. A child that accepts nothing is cut off instead.
func (t *Trie[S]) reconcile(parent *Node[S], symbol S) error {
	child, ok := parent.Next(symbol)
	if !ok {
		return fmt.Errorf("%w: node %d has no transition for %v", ErrInvariant, parent.id, symbol)
	}
	if child.inDegree > 1 {
		return fmt.Errorf("%w: node %d reached by %v has %d incoming edges", ErrInvariant, child.id, symbol, child.inDegree)
	}
	if !child.final && len(child.edges) == 0 {
		setEdge(parent, symbol, nil)
		t.release(child)
		return nil
	}
	if found, ok := t.register.find(child); ok && found != child {
		setEdge(parent, symbol, found)
		if child.inDegree == 0 {
			t.release(child)
		}
		return nil
	}
	t.register.add(child)
	return nil
}

func (t *Trie[S]) Contains(word []S) bool {
	n := t.root
	for _, symbol := range word {
		next, ok := n.Next(symbol)
		if !ok {
			return false
		}
		n = next
	}
	return n.final
}

// Words lists the accepted words in symbol order.
func (t *Trie[S]) Words() [][]S {
	var words [][]S
	graph.Walk(t.root, func(path []S, n *Node[S]) bool {
		if n.final {
			words = append(words, path)
		}
		return true
	})
	return words
}

func (t *Trie[S]) Root() *Node[S] { return t.root }

// Len is the number of words.
func (t *Trie[S]) Len() int { return t.words }

// Size is the number of live states, root included.
func (t *Trie[S]) Size() int { return len(t.states) }

func (t *Trie[S]) State(id int) (*Node[S], bool) {
	if id < 0 || id >= len(t.states) {
		return nil, false
	}
	return t.states[id], true
}

// Err reports the invariant violation that broke this trie, if any.
func (t *Trie[S]) Err() error { return t.err }
