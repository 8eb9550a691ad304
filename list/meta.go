package list

import (
	"bytes"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

// meta is the per-list bookkeeping record: the serial counter and the set
// of live serials. It lives under a single key, so every operation that
// touches it conflicts with concurrent mutators at commit time; that is
// what keeps racing writers from double-allocating serials.
type meta struct {
	nextSerial uint64
	live       *roaring64.Bitmap
}

func newMeta() *meta {
	return &meta{nextSerial: 1, live: roaring64.New()}
}

func (m *meta) encode() ([]byte, error) {
	liveBz, err := m.live.MarshalBinary()
	if err != nil {
		return nil, err
	}

	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	var buf bytes.Buffer
	enc.Reset(&buf)

	err = enc.EncodeMulti(m.nextSerial, liveBz)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *meta) decode(data []byte) error {
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(bytes.NewReader(data))

	var liveBz []byte
	err := dec.DecodeMulti(&m.nextSerial, &liveBz)
	if err != nil {
		return err
	}

	m.live = roaring64.New()
	return m.live.UnmarshalBinary(liveBz)
}
