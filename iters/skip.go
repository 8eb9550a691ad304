package iters

import (
	"github.com/dchenk/base79/kv"
	badger "github.com/dgraph-io/badger/v4"
)

// SkipIterator is an iterator that skips leading items for as long as a
// stateful condition holds.
type SkipIterator[K, V, S any] struct {
	base  kv.Iterator[K, V]
	state S
	f     func(S, K, V, *badger.Item) (S, bool)
}

// SkipN creates a new skip iterator that skips the first n items.
func SkipN[K, V any](base kv.Iterator[K, V], n int) *SkipIterator[K, V, int] {
	return Skip(base, func(s int, _ K, _ V, _ *badger.Item) (int, bool) {
		return s + 1, s < n
	})
}

// Skip creates a new skip iterator.
func Skip[K, V, S any](base kv.Iterator[K, V], f func(S, K, V, *badger.Item) (S, bool)) *SkipIterator[K, V, S] {
	return &SkipIterator[K, V, S]{base: base, f: f}
}

// Close implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Close() {
	it.base.Close()
}

// Item implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Item() *badger.Item {
	return it.base.Item()
}

// Next implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Next() {
	it.base.Next()
}

// Rewind implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Rewind() {
	it.base.Rewind()
	var zero S
	it.state = zero
	it.skip()
}

func (it *SkipIterator[K, V, S]) skip() {
	for it.base.Valid() {
		k := it.base.Key()
		v, _ := it.base.Value()
		s, ok := it.f(it.state, k, v, it.base.Item())
		if !ok {
			break
		}

		it.state = s
		it.base.Next()
	}
}

// Seek implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Seek(key []byte) {
	it.base.Seek(key)
	var zero S
	it.state = zero
	it.skip()
}

// Valid implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Valid() bool {
	return it.base.Valid()
}

// Key implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Key() K {
	return it.base.Key()
}

// Value implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Value() (value V, err error) {
	return it.base.Value()
}
