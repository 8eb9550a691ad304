package iters_test

import (
	"encoding/binary"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

type MockIterator[K, V any] struct {
	Keys  []K
	Items []V
	i     int
}

func NewMockIterator[K, V any](keys []K, items []V) *MockIterator[K, V] {
	return &MockIterator[K, V]{Keys: keys, Items: items}
}

func (it *MockIterator[K, V]) Close() {}

func (it *MockIterator[K, V]) Item() *badger.Item {
	return nil
}

func (it *MockIterator[K, V]) Next() {
	it.i++
}

func (it *MockIterator[K, V]) Rewind() {
	it.i = 0
}

// Seek interprets the key as a big-endian element index.
func (it *MockIterator[K, V]) Seek(key []byte) {
	it.i = int(binary.BigEndian.Uint64(key))
}

func (it *MockIterator[K, V]) Valid() bool {
	return it.i < len(it.Items)
}

func (it *MockIterator[K, V]) Key() K {
	if it.i < len(it.Keys) {
		return it.Keys[it.i]
	}
	var zero K
	return zero
}

func (it *MockIterator[K, V]) Value() (value V, err error) {
	if it.i < len(it.Items) {
		return it.Items[it.i], nil
	}
	return value, fmt.Errorf("out of bounds")
}
