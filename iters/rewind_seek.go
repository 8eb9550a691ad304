package iters

import (
	"github.com/dchenk/base79/kv"
	badger "github.com/dgraph-io/badger/v4"
)

// RewindSeekIterator is an iterator that seeks to a fixed key on rewind.
// Badger rewinds a reverse prefix iterator to the bare prefix, which sorts
// below every key carrying the prefix, so reverse scans must rewind through
// a seek to the upper end of their range instead.
type RewindSeekIterator[K, V any] struct {
	base kv.Iterator[K, V]
	key  []byte
}

// RewindSeek creates a new rewind seek iterator.
func RewindSeek[K, V any](base kv.Iterator[K, V], key []byte) *RewindSeekIterator[K, V] {
	return &RewindSeekIterator[K, V]{base: base, key: key}
}

// Close implements the Iterator interface.
func (it *RewindSeekIterator[K, V]) Close() {
	it.base.Close()
}

// Item implements the Iterator interface.
func (it *RewindSeekIterator[K, V]) Item() *badger.Item {
	return it.base.Item()
}

// Next implements the Iterator interface.
func (it *RewindSeekIterator[K, V]) Next() {
	it.base.Next()
}

// Rewind implements the Iterator interface.
func (it *RewindSeekIterator[K, V]) Rewind() {
	it.base.Seek(it.key)
}

// Seek implements the Iterator interface.
func (it *RewindSeekIterator[K, V]) Seek(key []byte) {
	it.base.Seek(key)
}

// Valid implements the Iterator interface.
func (it *RewindSeekIterator[K, V]) Valid() bool {
	return it.base.Valid()
}

// Key implements the Iterator interface.
func (it *RewindSeekIterator[K, V]) Key() K {
	return it.base.Key()
}

// Value implements the Iterator interface.
func (it *RewindSeekIterator[K, V]) Value() (V, error) {
	return it.base.Value()
}
