// Package list implements an ordered-list store on top of BadgerDB, with
// base79 position keys deciding the order. Because the position key is the
// tail of the badger key, badger's own key order is the list order: readers
// that know nothing beyond bytes (backups, replication streams, other
// languages) still see the elements sorted.
//
// A Store is a reusable configuration bound to a key prefix; Instantiate
// ties it to a transaction and yields an Instance with the actual list
// operations. Within an instance, elements are addressed by their position
// key. Inserting between neighbors never re-keys other elements.
package list

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dchenk/base79"
	"github.com/dchenk/base79/iters"
	"github.com/dchenk/base79/kv"
	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Key layout under the store prefix: the single metadata record, then the
// items ordered by position key.
const (
	metaTag byte = 0x00
	itemTag byte = 0x01
)

// ErrNotFound is returned when no item sits at the given position.
var ErrNotFound = errors.New("list: item not found")

// Store is the configuration of one ordered list kept under a key prefix.
type Store[T any] struct {
	prefix []byte
}

// New creates a new Store under the given key prefix.
func New[T any](prefix []byte) *Store[T] {
	return &Store[T]{prefix: bytes.Clone(prefix)}
}

// Prefix returns the key prefix of the store.
func (s *Store[T]) Prefix() []byte {
	return bytes.Clone(s.prefix)
}

// Instantiate implements the kv.Instantiator interface.
func (s *Store[T]) Instantiate(txn *badger.Txn) *Instance[T] {
	return &Instance[T]{
		store:      txn,
		metaKey:    append(bytes.Clone(s.prefix), metaTag),
		itemPrefix: append(bytes.Clone(s.prefix), itemTag),
	}
}

var _ kv.Instantiator[*Instance[any]] = (*Store[any])(nil)

// Instance is a Store bound to a badger transaction.
type Instance[T any] struct {
	store      kv.Store
	metaKey    []byte
	itemPrefix []byte
}

func (s *Instance[T]) itemKey(pos base79.Key) []byte {
	return append(bytes.Clone(s.itemPrefix), pos...)
}

func (s *Instance[T]) posOf(key []byte) base79.Key {
	return base79.Key(key[len(s.itemPrefix):])
}

func (s *Instance[T]) loadMeta() (*meta, error) {
	bItem, err := s.store.Get(s.metaKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return newMeta(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list meta: %w", err)
	}

	m := &meta{}
	err = bItem.Value(func(val []byte) error {
		return m.decode(val)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode list meta: %w", err)
	}
	return m, nil
}

func (s *Instance[T]) saveMeta(m *meta) error {
	data, err := m.encode()
	if err != nil {
		return fmt.Errorf("failed to encode list meta: %w", err)
	}
	return s.store.Set(s.metaKey, data)
}

// Get returns the item at the given position.
func (s *Instance[T]) Get(pos base79.Key) (*Item[T], error) {
	bItem, err := s.store.Get(s.itemKey(pos))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w at %q", ErrNotFound, pos)
	}
	if err != nil {
		return nil, err
	}

	item := &Item[T]{Pos: pos}
	err = bItem.Value(func(val []byte) error {
		return decodeRecord(val, item)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode item at %q: %w", pos, err)
	}
	return item, nil
}

func (s *Instance[T]) has(pos base79.Key) error {
	_, err := s.store.Get(s.itemKey(pos))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w at %q", ErrNotFound, pos)
	}
	return err
}

// PushBack appends value behind the current last element.
func (s *Instance[T]) PushBack(value T) (*Item[T], error) {
	pos := base79.Mid()
	if last, ok := s.edgePos(true); ok {
		pos = base79.After(last)
	}
	return s.insert(pos, value)
}

// PushFront inserts value in front of the current first element.
func (s *Instance[T]) PushFront(value T) (*Item[T], error) {
	pos := base79.Mid()
	if first, ok := s.edgePos(false); ok {
		pos = base79.Before(first)
	}
	return s.insert(pos, value)
}

// InsertBefore places value immediately before the item at anchor.
func (s *Instance[T]) InsertBefore(anchor base79.Key, value T) (*Item[T], error) {
	pos, err := s.posBefore(anchor)
	if err != nil {
		return nil, err
	}
	return s.insert(pos, value)
}

// InsertAfter places value immediately after the item at anchor.
func (s *Instance[T]) InsertAfter(anchor base79.Key, value T) (*Item[T], error) {
	pos, err := s.posAfter(anchor)
	if err != nil {
		return nil, err
	}
	return s.insert(pos, value)
}

// MoveBefore re-keys the item at pos to sit immediately before anchor. The
// item keeps its identity and serial.
func (s *Instance[T]) MoveBefore(pos, anchor base79.Key) (*Item[T], error) {
	return s.move(pos, anchor, true)
}

// MoveAfter re-keys the item at pos to sit immediately after anchor. The
// item keeps its identity and serial.
func (s *Instance[T]) MoveAfter(pos, anchor base79.Key) (*Item[T], error) {
	return s.move(pos, anchor, false)
}

// Update replaces the value of the item at pos, keeping everything else.
func (s *Instance[T]) Update(pos base79.Key, value T) (*Item[T], error) {
	item, err := s.Get(pos)
	if err != nil {
		return nil, err
	}

	item.Value = value
	data, err := encodeRecord(item.ID, item.Serial, item.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}
	if err := s.store.Set(s.itemKey(pos), data); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item at pos.
func (s *Instance[T]) Delete(pos base79.Key) error {
	item, err := s.Get(pos)
	if err != nil {
		return err
	}

	m, err := s.loadMeta()
	if err != nil {
		return err
	}
	m.live.Remove(item.Serial)

	if err := s.store.Delete(s.itemKey(pos)); err != nil {
		return err
	}
	return s.saveMeta(m)
}

// Front returns the first item in list order, or nil when the list is
// empty.
func (s *Instance[T]) Front() (*Item[T], error) {
	if pos, ok := s.edgePos(false); ok {
		return s.Get(pos)
	}
	return nil, nil
}

// Back returns the last item in list order, or nil when the list is empty.
func (s *Instance[T]) Back() (*Item[T], error) {
	if pos, ok := s.edgePos(true); ok {
		return s.Get(pos)
	}
	return nil, nil
}

// Len returns the number of live items without scanning them.
func (s *Instance[T]) Len() (uint64, error) {
	m, err := s.loadMeta()
	if err != nil {
		return 0, err
	}
	return m.live.GetCardinality(), nil
}

// Contains reports whether serial belongs to a live item.
func (s *Instance[T]) Contains(serial uint64) (bool, error) {
	m, err := s.loadMeta()
	if err != nil {
		return false, err
	}
	return m.live.Contains(serial), nil
}

// NewIterator creates an iterator over the items in list order. Set
// opts.Reverse for back-to-front; the options' prefix is replaced with the
// list's own.
func (s *Instance[T]) NewIterator(opts badger.IteratorOptions) kv.Iterator[base79.Key, *Item[T]] {
	opts.Prefix = s.itemPrefix
	iter := &Iterator[T]{
		base:       s.store.NewIterator(opts),
		itemPrefix: s.itemPrefix,
	}
	if !opts.Reverse {
		return iter
	}
	// Badger rewinds a reverse prefix iterator to the bare prefix, below
	// every item key, so rewinds have to seek past the last possible
	// position instead. Positions are printable ASCII, so a single 0xff
	// sorts after all of them.
	return iters.RewindSeek[base79.Key, *Item[T]](iter, []byte{0xff})
}

// insert writes a brand-new item at pos, allocating its identity and
// serial.
func (s *Instance[T]) insert(pos base79.Key, value T) (*Item[T], error) {
	m, err := s.loadMeta()
	if err != nil {
		return nil, err
	}

	item := &Item[T]{
		ID:     uuid.New(),
		Serial: m.nextSerial,
		Pos:    pos,
		Value:  value,
	}
	m.nextSerial++
	m.live.Add(item.Serial)

	data, err := encodeRecord(item.ID, item.Serial, item.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}
	if err := s.store.Set(s.itemKey(pos), data); err != nil {
		return nil, err
	}
	if err := s.saveMeta(m); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Instance[T]) move(pos, anchor base79.Key, before bool) (*Item[T], error) {
	if pos == anchor {
		return nil, fmt.Errorf("list: cannot move %q relative to itself", pos)
	}

	item, err := s.Get(pos)
	if err != nil {
		return nil, err
	}

	var newPos base79.Key
	if before {
		newPos, err = s.posBefore(anchor)
	} else {
		newPos, err = s.posAfter(anchor)
	}
	if err != nil {
		return nil, err
	}

	data, err := encodeRecord(item.ID, item.Serial, item.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}
	if err := s.store.Set(s.itemKey(newPos), data); err != nil {
		return nil, err
	}
	if err := s.store.Delete(s.itemKey(pos)); err != nil {
		return nil, err
	}

	item.Pos = newPos
	return item, nil
}

// posBefore picks a fresh position between anchor and its predecessor.
func (s *Instance[T]) posBefore(anchor base79.Key) (base79.Key, error) {
	if err := s.has(anchor); err != nil {
		return "", err
	}
	if prev, ok := s.prevPos(anchor); ok {
		return base79.Between(prev, anchor), nil
	}
	return base79.Before(anchor), nil
}

// posAfter picks a fresh position between anchor and its successor.
func (s *Instance[T]) posAfter(anchor base79.Key) (base79.Key, error) {
	if err := s.has(anchor); err != nil {
		return "", err
	}
	if next, ok := s.nextPos(anchor); ok {
		return base79.Between(anchor, next), nil
	}
	return base79.After(anchor), nil
}

// edgePos scans for the first position in iteration direction. A reverse
// badger iterator rewinds to the bare prefix, below every item key, so the
// back edge is reached by seeking to the prefix successor.
func (s *Instance[T]) edgePos(reverse bool) (base79.Key, bool) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = s.itemPrefix
	opts.PrefetchValues = false
	opts.Reverse = reverse
	it := s.store.NewIterator(opts)
	defer it.Close()

	if reverse {
		it.Seek(kv.Increment(bytes.Clone(s.itemPrefix)))
	} else {
		it.Rewind()
	}
	if !it.Valid() {
		return "", false
	}
	return s.posOf(it.Item().Key()), true
}

// prevPos finds the position immediately before pos, if any.
func (s *Instance[T]) prevPos(pos base79.Key) (base79.Key, bool) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = s.itemPrefix
	opts.PrefetchValues = false
	opts.Reverse = true
	it := s.store.NewIterator(opts)
	defer it.Close()

	key := s.itemKey(pos)
	it.Seek(key)
	if it.Valid() && bytes.Equal(it.Item().Key(), key) {
		it.Next()
	}
	if !it.Valid() {
		return "", false
	}
	return s.posOf(it.Item().Key()), true
}

// nextPos finds the position immediately after pos, if any.
func (s *Instance[T]) nextPos(pos base79.Key) (base79.Key, bool) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = s.itemPrefix
	opts.PrefetchValues = false
	it := s.store.NewIterator(opts)
	defer it.Close()

	key := s.itemKey(pos)
	it.Seek(key)
	if it.Valid() && bytes.Equal(it.Item().Key(), key) {
		it.Next()
	}
	if !it.Valid() {
		return "", false
	}
	return s.posOf(it.Item().Key()), true
}
