package lib

import (
	"reflect"
	"testing"
)

func TestPoolRecyclesInOrder(t *testing.T) {
	created := 0
	p := NewPool[*int](func() *int {
		created++
		v := created
		return &v
	})
	a, b := p.Get(), p.Get()
	if created != 2 {
		t.Fatalf("created %d values, want 2", created)
	}
	p.Put(a)
	p.Put(b)
	if p.Len() != 2 {
		t.Fatalf("Len() = %d", p.Len())
	}
	if got := p.Get(); got != b {
		t.Fatal("Get should return the most recently Put value")
	}
	p.Reset()
	p.Get()
	if created != 3 {
		t.Fatalf("created %d values after Reset, want 3", created)
	}
}

func TestLRUEvictsOldest(t *testing.T) {
	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Put("b", 2)
	if _, ok := l.Get("a"); !ok {
		t.Fatal("a should be cached")
	}
	l.Put("c", 3)
	if _, ok := l.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if v, ok := l.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v", v, ok)
	}
	l.Remove("a")
	if l.Len() != 1 {
		t.Fatalf("Len() = %d", l.Len())
	}
	l.Purge()
	if _, ok := l.Get("c"); ok || l.Len() != 0 {
		t.Fatal("Purge left entries behind")
	}
}

func TestEncodeDecode(t *testing.T) {
	in := [][]rune{[]rune("山"), []rune("ab")}
	data, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Decode[[][]rune](data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(Strings(out), []string{"山", "ab"}) {
		t.Fatalf("Decode() = %q", Strings(out))
	}
}

func TestUniqueKeepsFirstOccurrence(t *testing.T) {
	got := Unique([]string{"b", "a", "b", "c", "a"})
	if !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("Unique() = %q", got)
	}
}
