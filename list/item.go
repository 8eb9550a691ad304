package list

import (
	"bytes"
	"fmt"

	"github.com/dchenk/base79"
	"github.com/google/uuid"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

// Item is a list element together with the bookkeeping the store keeps for
// it. ID is a stable identity that survives moves, Serial is the list-local
// insertion counter (also stable across moves) and Pos is the position key
// the element currently sorts by.
type Item[T any] struct {
	ID     uuid.UUID  `json:"id"`
	Serial uint64     `json:"serial"`
	Pos    base79.Key `json:"pos"`
	Value  T          `json:"value"`
}

// encodeRecord encodes the stored parts of an item. The position is not
// among them; it lives in the badger key, which is what keeps the list
// sorted on disk.
func encodeRecord[T any](id uuid.UUID, serial uint64, value T) ([]byte, error) {
	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	var buf bytes.Buffer
	enc.Reset(&buf)

	err := enc.EncodeMulti(id[:], serial, value)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRecord[T any](data []byte, item *Item[T]) error {
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(bytes.NewReader(data))

	var id []byte
	err := dec.DecodeMulti(&id, &item.Serial, &item.Value)
	if err != nil {
		return err
	}

	item.ID, err = uuid.FromBytes(id)
	if err != nil {
		return fmt.Errorf("malformed item id: %w", err)
	}
	return nil
}
