package lib

import (
	"container/list"
	"sync"

	"github.com/oarkflow/xsync"
)

type LRU[K comparable, V any] struct {
	capacity int
	cache    xsync.IMap[K, *list.Element]
	list     *list.List
	m        sync.Mutex
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		capacity: capacity,
		cache:    xsync.NewMap[K, *list.Element](),
		list:     list.New(),
	}
}

func (l *LRU[K, V]) Get(key K) (V, bool) {
	l.m.Lock()
	defer l.m.Unlock()
	if ele, ok := l.cache.Get(key); ok {
		l.list.MoveToFront(ele)
		return ele.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

func (l *LRU[K, V]) Put(key K, value V) {
	l.m.Lock()
	defer l.m.Unlock()
	if ele, ok := l.cache.Get(key); ok {
		l.list.MoveToFront(ele)
		ele.Value.(*entry[K, V]).value = value
		return
	}
	ele := l.list.PushFront(&entry[K, V]{key, value})
	l.cache.Set(key, ele)
	if l.list.Len() > l.capacity {
		l.removeOldest()
	}
}

func (l *LRU[K, V]) removeOldest() {
	ele := l.list.Back()
	if ele == nil {
		return
	}
	l.list.Remove(ele)
	l.cache.Del(ele.Value.(*entry[K, V]).key)
}

func (l *LRU[K, V]) Remove(key K) {
	l.m.Lock()
	defer l.m.Unlock()
	if ele, ok := l.cache.Get(key); ok {
		l.list.Remove(ele)
		l.cache.Del(key)
	}
}

func (l *LRU[K, V]) Len() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.list.Len()
}

// Purge drops every entry.
func (l *LRU[K, V]) Purge() {
	l.m.Lock()
	defer l.m.Unlock()
	l.cache.Clear()
	l.list.Init()
}
