package base79

import (
	"errors"
	"fmt"

	"github.com/dchenk/base79/digits"
)

// MinChar encodes digit 0 and MaxChar encodes digit 78. The alphabet is
// the single contiguous ASCII run between them, so encoding is one addition
// per digit and string order equals digit order.
const (
	MinChar = '+'
	MaxChar = MinChar + digits.Base - 1
)

// Parse errors. Parse wraps ErrInvalidChar with position detail; match it
// with errors.Is.
var (
	ErrEmpty       = errors.New("key is empty")
	ErrInvalidChar = errors.New("invalid character in key")
)

// Parse checks text structurally and returns it as a Key. Keys received
// from the outside must be non-empty printable ASCII; anything else cannot
// have come from this package and is rejected. Parse does not verify that
// the text is in the alphabet or canonical, so keys from a foreign or
// newer producer still pass through and keep sorting correctly.
func Parse(text string) (Key, error) {
	if len(text) == 0 {
		return "", ErrEmpty
	}
	for i := 0; i < len(text); i++ {
		if c := text[i]; c < 0x20 || c > 0x7e {
			return "", fmt.Errorf("%w: byte %#02x at index %d", ErrInvalidChar, c, i)
		}
	}
	return Key(text), nil
}

// FromDigits encodes a digit sequence as a Key. The sequence must hold
// digits below Base, as produced by the digits package; anything larger
// maps outside the alphabet and panics.
func FromDigits(seq digits.Sequence) Key {
	buf := make([]byte, len(seq))
	for i, d := range seq {
		if d >= digits.Base {
			panic(fmt.Sprintf("base79: digit %d out of range", d))
		}
		buf[i] = d + MinChar
	}
	return Key(buf)
}

// Digits decodes the key back into its digit sequence. Parse admits any
// printable ASCII so that foreign keys keep sorting, but only the alphabet
// run carries digits; decoding a key from a wider alphabet panics.
func (k Key) Digits() digits.Sequence {
	seq := make(digits.Sequence, len(k))
	for i := 0; i < len(k); i++ {
		c := k[i]
		if c < MinChar || c > MaxChar {
			panic(fmt.Sprintf("base79: key %q: byte %#02x outside the alphabet", string(k), c))
		}
		seq[i] = c - MinChar
	}
	return seq
}

// MarshalText implements encoding.TextMarshaler. Keys marshal as their own
// text, so they embed directly in JSON strings and other text formats.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same checks
// as Parse.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
