package trie

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/oarkflow/multisearch/graph"
)

// Node is a DAWG state. After minimisation a node may be the target of many
// edges; inDegree counts them.
type Node[S constraints.Ordered] struct {
	id       int
	final    bool
	inDegree int
	edges    graph.Edges[S, *Node[S]]
}

func (n *Node[S]) ID() int { return n.id }

func (n *Node[S]) Final() bool { return n.final }

func (n *Node[S]) InDegree() int { return n.inDegree }

func (n *Node[S]) Edges() graph.Edges[S, *Node[S]] { return n.edges }

func (n *Node[S]) Next(symbol S) (*Node[S], bool) {
	return n.edges.Get(symbol)
}

func (n *Node[S]) reset() {
	n.final = false
	n.inDegree = 0
	clear(n.edges)
	n.edges = n.edges[:0]
}

// setEdge points n at next for symbol and keeps both in-degrees in step.
// A nil next removes the edge.
func setEdge[S constraints.Ordered](n *Node[S], symbol S, next *Node[S]) {
	var old *Node[S]
	if next == nil {
		old, _ = n.edges.Delete(symbol)
	} else {
		old, _ = n.edges.Set(symbol, next)
	}
	if old == next {
		return
	}
	if old != nil {
		old.inDegree--
	}
	if next != nil {
		next.inDegree++
	}
}

// compareNodes orders nodes by content: final flag, out-degree, then edge by
// edge on symbol and recursively on target. Zero means the two nodes accept
// the same language and can be merged.
func compareNodes[S constraints.Ordered](a, b *Node[S]) int {
	if a == b {
		return 0
	}
	if a.final != b.final {
		if !a.final {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(len(a.edges), len(b.edges)); c != 0 {
		return c
	}
	for i := range a.edges {
		ea, eb := a.edges[i], b.edges[i]
		if c := cmp.Compare(ea.Symbol, eb.Symbol); c != 0 {
			return c
		}
		if c := compareNodes(ea.Node, eb.Node); c != 0 {
			return c
		}
	}
	return 0
}
