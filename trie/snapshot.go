package trie

import (
	"github.com/oarkflow/multisearch/lib"
)

// MarshalBinary encodes the word list. The automaton is rebuilt on decode.
func (t *Trie[S]) MarshalBinary() ([]byte, error) {
	return lib.Encode(t.Words())
}

func (t *Trie[S]) UnmarshalBinary(data []byte) error {
	words, err := lib.Decode[[][]S](data)
	if err != nil {
		return err
	}
	return t.Refill(words)
}
