package iters_test

import (
	"testing"

	"github.com/dchenk/base79/iters"
	"github.com/dchenk/base79/kv"
	"github.com/stretchr/testify/require"
)

func TestEnumerate(t *testing.T) {
	var base kv.ValueIterator[string] = NewMockIterator(
		[][]byte{[]byte("x"), []byte("y"), []byte("z")},
		[]string{"x", "y", "z"},
	)

	it := iters.Enumerate[uint64](base)
	defer it.Close()

	var keys []uint64
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []uint64{0, 1, 2}, keys)

	it.Rewind()
	require.Equal(t, uint64(0), it.Key())
}
