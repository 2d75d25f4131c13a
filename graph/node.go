package graph

import (
	"golang.org/x/exp/constraints"
)

// Node is the shape shared by suffix automaton states and trie nodes:
// an identifier plus a sorted out-edge list pointing at nodes of the same kind.
type Node[S constraints.Ordered, N any] interface {
	ID() int
	Edges() Edges[S, N]
}

type step[S constraints.Ordered, N any] struct {
	node N
	path []S
}

// Walk visits every path from root depth first, in symbol order. The path
// slice handed to fn is owned by the callee. Returning false from fn skips
// the node's descendants.
func Walk[S constraints.Ordered, N Node[S, N]](root N, fn func(path []S, node N) bool) {
	stack := []step[S, N]{{node: root}}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(curr.path, curr.node) {
			continue
		}
		edges := curr.node.Edges()
		for i := len(edges) - 1; i >= 0; i-- {
			path := make([]S, len(curr.path)+1)
			copy(path, curr.path)
			path[len(curr.path)] = edges[i].Symbol
			stack = append(stack, step[S, N]{node: edges[i].Node, path: path})
		}
	}
}
