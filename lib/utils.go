package lib

import (
	"hash/fnv"

	"github.com/oarkflow/msgpack"
)

// Encode and decode functions to handle type serialization.
func Encode[V any](value V) ([]byte, error) {
	return msgpack.Marshal(value)
}

func Decode[V any](data []byte) (V, error) {
	var value V
	err := msgpack.Unmarshal(data, &value)
	return value, err
}

func Hash64(s string) uint64 {
	f := fnv.New64a()
	_, _ = f.Write([]byte(s))
	return f.Sum64()
}
