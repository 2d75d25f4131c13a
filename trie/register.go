package trie

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const registerDegree = 16

// register holds one canonical node per content class.
type register[S constraints.Ordered] struct {
	tree *btree.BTreeG[*Node[S]]
}

func newRegister[S constraints.Ordered]() *register[S] {
	return &register[S]{
		tree: btree.NewG[*Node[S]](registerDegree, func(a, b *Node[S]) bool {
			return compareNodes(a, b) < 0
		}),
	}
}

func (r *register[S]) find(n *Node[S]) (*Node[S], bool) {
	return r.tree.Get(n)
}

func (r *register[S]) add(n *Node[S]) {
	r.tree.ReplaceOrInsert(n)
}

// remove drops n only if n itself is the registered representative; an equal
// but distinct node stays.
func (r *register[S]) remove(n *Node[S]) bool {
	if found, ok := r.tree.Get(n); ok && found == n {
		r.tree.Delete(n)
		return true
	}
	return false
}

func (r *register[S]) contains(n *Node[S]) bool {
	found, ok := r.tree.Get(n)
	return ok && found == n
}

func (r *register[S]) len() int {
	return r.tree.Len()
}

func (r *register[S]) clear() {
	r.tree.Clear(false)
}
