// Package kv holds the store and iterator contracts shared by the
// Badger-backed packages of this module, along with small byte-key helpers.
package kv

import (
	badger "github.com/dgraph-io/badger/v4"
)

// Store is the generalized interface of a key-value store with get, set,
// delete and iterate operations. *badger.Txn satisfies it.
type Store interface {
	Delete(key []byte) error
	Get(key []byte) (item *badger.Item, err error)
	NewIterator(opts badger.IteratorOptions) *badger.Iterator
	Set(key, value []byte) error
	SetEntry(e *badger.Entry) error
}

// Instantiator is a store configuration that binds to a transaction and
// yields a store instance of type T scoped to that transaction.
type Instantiator[T any] interface {
	Instantiate(txn *badger.Txn) T
}

var _ Store = (*badger.Txn)(nil)
