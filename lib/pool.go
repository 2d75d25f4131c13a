package lib

import (
	"sync"
)

// Pool is a free list of reusable values. Unlike sync.Pool it never drops
// what was Put, so recycling stays deterministic.
type Pool[T any] struct {
	mu    sync.Mutex
	items []T
	new   func() T
}

func NewPool[T any](fn func() T) *Pool[T] {
	return &Pool[T]{new: fn}
}

func (p *Pool[T]) Get() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.items); n > 0 {
		item := p.items[n-1]
		var zero T
		p.items[n-1] = zero
		p.items = p.items[:n-1]
		return item
	}
	return p.new()
}

func (p *Pool[T]) Put(item T) {
	p.mu.Lock()
	p.items = append(p.items, item)
	p.mu.Unlock()
}

func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

func (p *Pool[T]) Reset() {
	p.mu.Lock()
	clear(p.items)
	p.items = p.items[:0]
	p.mu.Unlock()
}
