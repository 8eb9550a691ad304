package list

import (
	"bytes"
	"fmt"

	"github.com/araddon/qlbridge/expr"
	qlvm "github.com/araddon/qlbridge/vm"
	"github.com/dchenk/base79"
	"github.com/dchenk/base79/internal/qlutil"
	"github.com/dchenk/base79/iters"
	"github.com/dchenk/base79/kv"
	badger "github.com/dgraph-io/badger/v4"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

// Query returns the items matching a qlbridge filter expression, in list
// order. Expressions see the fields of the item's value plus the
// pseudo-columns _id, _serial and _pos.
func (s *Instance[T]) Query(q string) (kv.Iterator[base79.Key, *Item[T]], error) {
	qe, err := expr.ParseExpression(q)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}

	iter := iters.Filter[base79.Key, *Item[T]](
		s.NewIterator(badger.DefaultIteratorOptions),
		func(item *Item[T], _ *badger.Item) bool {
			ctx, err := queryContext(item)
			if err != nil {
				return false
			}
			ok, _ := qlvm.MatchesExpr(ctx, qe)
			return ok
		})
	return iter, nil
}

// queryContext flattens an item into a qlbridge evaluation context by
// round-tripping its value through msgpack into a generic map. Scalar
// values have no named fields and stay reachable only through the
// pseudo-columns.
func queryContext[T any](item *Item[T]) (*qlutil.ContextWrapper, error) {
	data, err := msgpack.Marshal(item.Value)
	if err != nil {
		return nil, err
	}

	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)

	fields := map[string]any{}
	if err := dec.Decode(&fields); err != nil {
		fields = map[string]any{}
	}

	return qlutil.NewContextWrapper(map[string]any{
		"_id":     item.ID.String(),
		"_serial": int64(item.Serial),
		"_pos":    string(item.Pos),
	}, fields), nil
}
