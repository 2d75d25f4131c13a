package graph

import (
	"errors"
	"reflect"
	"testing"
)

type testNode struct {
	id    int
	edges Edges[rune, *testNode]
}

func (n *testNode) ID() int { return n.id }
func (n *testNode) Edges() Edges[rune, *testNode] { return n.edges }

func TestEdgesSetKeepsOrder(t *testing.T) {
	var e Edges[rune, int]
	for i, r := range "dbeac" {
		if _, replaced := e.Set(r, i); replaced {
			t.Fatalf("unexpected replace for %q", r)
		}
	}
	if got := string(e.Symbols()); got != "abcde" {
		t.Fatalf("symbols = %q, want %q", got, "abcde")
	}
	old, replaced := e.Set('c', 42)
	if !replaced || old != 4 {
		t.Fatalf("Set(c) = %d, %v; want 4, true", old, replaced)
	}
	if v, ok := e.Get('c'); !ok || v != 42 {
		t.Fatalf("Get(c) = %d, %v", v, ok)
	}
	if _, ok := e.Get('z'); ok {
		t.Fatal("Get(z) should miss")
	}
}

func TestEdgesDeleteIsIdempotent(t *testing.T) {
	var e Edges[rune, int]
	e.Set('a', 1)
	e.Set('b', 2)
	e.Set('c', 3)
	if old, ok := e.Delete('b'); !ok || old != 2 {
		t.Fatalf("Delete(b) = %d, %v", old, ok)
	}
	if _, ok := e.Delete('b'); ok {
		t.Fatal("second Delete(b) should report absent")
	}
	if got := string(e.Symbols()); got != "ac" {
		t.Fatalf("symbols = %q", got)
	}
}

func TestEdgesStrictVariants(t *testing.T) {
	var e Edges[rune, int]
	if err := e.Insert('a', 1); err != nil {
		t.Fatal(err)
	}
	if err := e.Insert('a', 2); !errors.Is(err, ErrDuplicateSymbol) {
		t.Fatalf("Insert duplicate err = %v", err)
	}
	if err := e.Replace('b', 2); !errors.Is(err, ErrMissingSymbol) {
		t.Fatalf("Replace missing err = %v", err)
	}
	if err := e.Replace('a', 7); err != nil {
		t.Fatal(err)
	}
	if v, _ := e.Get('a'); v != 7 {
		t.Fatalf("Get(a) = %d", v)
	}
}

func TestEdgesClone(t *testing.T) {
	var e Edges[rune, int]
	e.Set('a', 1)
	c := e.Clone()
	c.Set('a', 9)
	if v, _ := e.Get('a'); v != 1 {
		t.Fatal("clone shares storage with original")
	}
}

func TestWalk(t *testing.T) {
	leaf := &testNode{id: 3}
	mid := &testNode{id: 2}
	mid.edges.Set('c', leaf)
	root := &testNode{id: 1}
	root.edges.Set('b', leaf)
	root.edges.Set('a', mid)

	var paths []string
	Walk(root, func(path []rune, n *testNode) bool {
		paths = append(paths, string(path))
		return true
	})
	want := []string{"", "a", "ac", "b"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths = %q, want %q", paths, want)
	}

	paths = paths[:0]
	Walk(root, func(path []rune, n *testNode) bool {
		paths = append(paths, string(path))
		return n.id != 2
	})
	want = []string{"", "a", "b"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("pruned paths = %q, want %q", paths, want)
	}
}
