package trie

import (
	"golang.org/x/exp/constraints"

	"github.com/oarkflow/multisearch/lib"
)

func newNodePool[S constraints.Ordered]() *lib.Pool[*Node[S]] {
	return lib.NewPool[*Node[S]](func() *Node[S] {
		return &Node[S]{}
	})
}
