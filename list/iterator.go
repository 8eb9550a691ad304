package list

import (
	"bytes"

	"github.com/dchenk/base79"
	"github.com/dchenk/base79/kv"
	badger "github.com/dgraph-io/badger/v4"
)

// Iterator walks the items of one list in position-key order.
type Iterator[T any] struct {
	base       *badger.Iterator
	itemPrefix []byte
	cached     *Item[T]
}

var _ kv.Iterator[base79.Key, *Item[struct{}]] = (*Iterator[struct{}])(nil)

// Close implements the Iterator interface.
func (it *Iterator[T]) Close() {
	it.base.Close()
}

// Item implements the Iterator interface.
func (it *Iterator[T]) Item() *badger.Item {
	return it.base.Item()
}

// Next implements the Iterator interface.
func (it *Iterator[T]) Next() {
	it.base.Next()
	it.cached = nil
}

// Rewind implements the Iterator interface.
func (it *Iterator[T]) Rewind() {
	it.base.Rewind()
	it.cached = nil
}

// Seek positions the iterator at pos, or at the nearest position beyond it
// in iteration direction. The argument is a bare position key, without the
// list's internal prefix.
func (it *Iterator[T]) Seek(pos []byte) {
	it.base.Seek(append(bytes.Clone(it.itemPrefix), pos...))
	it.cached = nil
}

// Valid implements the Iterator interface.
func (it *Iterator[T]) Valid() bool {
	return it.base.Valid()
}

// Key returns the position of the current item.
func (it *Iterator[T]) Key() base79.Key {
	return base79.Key(it.base.Item().Key()[len(it.itemPrefix):])
}

// Value decodes and returns the current item.
func (it *Iterator[T]) Value() (*Item[T], error) {
	if it.cached != nil {
		return it.cached, nil
	}

	item := &Item[T]{Pos: it.Key()}
	err := it.base.Item().Value(func(val []byte) error {
		return decodeRecord(val, item)
	})
	if err != nil {
		return nil, err
	}
	it.cached = item
	return item, nil
}
