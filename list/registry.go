package list

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/dchenk/base79/kv"
	badger "github.com/dgraph-io/badger/v4"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

// Registry associates list names with unique fixed-width key prefixes, so
// that many independently ordered lists share one Badger keyspace. The
// allocation state is persisted in the database itself and reloaded on
// startup.
type Registry struct {
	db      *badger.DB
	prefix  []byte
	width   int
	nextKey []byte
	m       map[string][]byte
	mu      sync.Mutex
}

// NewRegistry creates a new Registry and loads its persisted state.
func NewRegistry(db *badger.DB, opts ...func(*Registry)) (*Registry, error) {
	r := &Registry{
		db:    db,
		width: 1,
		m:     make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.nextKey = kv.Increment(bytes.Repeat([]byte{0}, r.width))

	err := r.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load list registry: %w", err)
	}
	return r, nil
}

// WithRegistryPrefix sets the key the registry persists its state under.
func WithRegistryPrefix(prefix []byte) func(*Registry) {
	return func(r *Registry) {
		r.prefix = prefix
	}
}

// WithPrefixWidth sets the width of the issued prefixes, bounding how many
// lists the registry can hold at 256^width-1.
func WithPrefixWidth(width int) func(*Registry) {
	return func(r *Registry) {
		r.width = width
	}
}

func (r *Registry) load() error {
	r.m = make(map[string][]byte)
	return r.db.View(func(txn *badger.Txn) error {
		stateItem, err := txn.Get(r.stateKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return fmt.Errorf("failed to get registry state: %w", err)
		}

		return stateItem.Value(func(val []byte) error {
			dec := msgpack.GetDecoder()
			dec.Reset(bytes.NewReader(val))
			defer msgpack.PutDecoder(dec)

			err := dec.DecodeMulti(&r.m, &r.nextKey)
			if err != nil {
				return fmt.Errorf("failed to decode registry state: %w", err)
			}
			return nil
		})
	})
}

// stateKey is where the registry keeps its own record. The all-zeros
// prefix is never issued to a list, so by default the state hides there.
func (r *Registry) stateKey() []byte {
	if len(r.prefix) == 0 {
		return bytes.Repeat([]byte{0}, r.width)
	}
	return r.prefix
}

// MustPrefix is like Prefix but panics if an error occurs.
func (r *Registry) MustPrefix(name string) []byte {
	prefix, err := r.Prefix(name)
	if err != nil {
		panic(err)
	}
	return prefix
}

// Prefix returns the stable key prefix for the named list, allocating the
// next free one on first use.
func (r *Registry) Prefix(name string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prefix, ok := r.m[name]; ok {
		return prefix, nil
	}

	if len(r.nextKey) > r.width {
		return nil, fmt.Errorf("list registry is full")
	}

	prefix := bytes.Clone(r.nextKey)
	r.m[name] = prefix
	r.nextKey = kv.Increment(r.nextKey)

	err := r.update()
	if err != nil {
		return nil, fmt.Errorf("failed to update list registry: %w", err)
	}

	return prefix, nil
}

// Has reports whether a name is already registered, without allocating.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.m[name]
	return ok
}

// Names returns the registered list names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.m))
	for name := range r.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) update() error {
	return r.db.Update(func(txn *badger.Txn) error {
		enc := msgpack.GetEncoder()
		var buf bytes.Buffer
		enc.Reset(&buf)
		defer msgpack.PutEncoder(enc)

		err := enc.EncodeMulti(r.m, r.nextKey)
		if err != nil {
			return fmt.Errorf("failed to encode registry state: %w", err)
		}

		err = txn.Set(r.stateKey(), buf.Bytes())
		if err != nil {
			return fmt.Errorf("failed to set registry state: %w", err)
		}
		return nil
	})
}
