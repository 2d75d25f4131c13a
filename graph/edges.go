package graph

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

var (
	ErrDuplicateSymbol = errors.New("edge symbol already present")
	ErrMissingSymbol   = errors.New("edge symbol not present")
)

type Edge[S constraints.Ordered, N any] struct {
	Symbol S
	Node   N
}

// Edges is an out-edge list kept sorted by symbol with unique symbols.
type Edges[S constraints.Ordered, N any] []Edge[S, N]

func (e Edges[S, N]) search(symbol S) (int, bool) {
	i := sort.Search(len(e), func(i int) bool {
		return e[i].Symbol >= symbol
	})
	return i, i < len(e) && e[i].Symbol == symbol
}

func (e Edges[S, N]) Get(symbol S) (N, bool) {
	if i, ok := e.search(symbol); ok {
		return e[i].Node, true
	}
	var zero N
	return zero, false
}

func (e Edges[S, N]) Has(symbol S) bool {
	_, ok := e.search(symbol)
	return ok
}

// Set inserts the edge or replaces the target of an existing one and
// returns the previous target.
func (e *Edges[S, N]) Set(symbol S, node N) (N, bool) {
	i, ok := e.search(symbol)
	if ok {
		old := (*e)[i].Node
		(*e)[i].Node = node
		return old, true
	}
	*e = append(*e, Edge[S, N]{})
	copy((*e)[i+1:], (*e)[i:])
	(*e)[i] = Edge[S, N]{Symbol: symbol, Node: node}
	var zero N
	return zero, false
}

// Delete removes the edge for symbol if present.
func (e *Edges[S, N]) Delete(symbol S) (N, bool) {
	var zero N
	i, ok := e.search(symbol)
	if !ok {
		return zero, false
	}
	old := (*e)[i].Node
	copy((*e)[i:], (*e)[i+1:])
	(*e)[len(*e)-1] = Edge[S, N]{}
	*e = (*e)[:len(*e)-1]
	return old, true
}

func (e *Edges[S, N]) Insert(symbol S, node N) error {
	if e.Has(symbol) {
		return fmt.Errorf("%w: %v", ErrDuplicateSymbol, symbol)
	}
	e.Set(symbol, node)
	return nil
}

func (e *Edges[S, N]) Replace(symbol S, node N) error {
	i, ok := e.search(symbol)
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingSymbol, symbol)
	}
	(*e)[i].Node = node
	return nil
}

func (e Edges[S, N]) Clone() Edges[S, N] {
	if e == nil {
		return nil
	}
	return append(make(Edges[S, N], 0, len(e)), e...)
}

func (e Edges[S, N]) Symbols() []S {
	symbols := make([]S, len(e))
	for i, edge := range e {
		symbols[i] = edge.Symbol
	}
	return symbols
}
