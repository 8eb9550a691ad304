// Package base79 generates short string keys that order an ever-changing
// collection. Each key encodes a base-79 fraction strictly between 0 and 1;
// comparing two keys as plain strings compares the fractions they encode,
// so storage engines, indexes and wire formats sort the collection without
// knowing anything about keys beyond byte order.
//
// New positions come from three operations only. Mid hands out the first
// key of an empty collection, Before and After squeeze a key below or above
// an existing one, and Between squeezes one between two neighbors. Keys
// grow one character at a time only under pressure at the insertion point,
// so repeated inserts anywhere in the collection never force other elements
// to be rekeyed.
//
// Keys use 79 digits because digits map one-to-one onto the contiguous
// characters '+' through 'y', the middle 79 of the 95 printable ASCII
// characters, keeping every key a plain one-byte-per-character string that
// stays clear of spaces and quotes.
package base79

import (
	"fmt"

	"github.com/dchenk/base79/digits"
)

// Key is an encoded fraction in (0, 1). The zero value is not a valid key;
// keys come from Mid, Between, Before, After or Parse. Keys compare with
// the ordinary string operators, and that comparison agrees with the order
// of the encoded fractions.
type Key string

// Mid returns "R", the key in the exact middle of the key space. It is the
// deterministic first key for an empty collection.
func Mid() Key {
	return FromDigits(digits.Mid())
}

// Between returns the shortest key strictly between lower and upper. It is
// deterministic: the same bounds always produce the same key, so two
// writers racing on the same gap produce the same result rather than
// diverging. Panics unless lower < upper; misordered or equal bounds are a
// caller bug.
func Between(lower, upper Key) Key {
	if lower >= upper {
		panic(fmt.Sprintf("base79: Between(%q, %q): bounds out of order", lower, upper))
	}
	return FromDigits(digits.Between(digits.Finite(lower.Digits()), digits.Finite(upper.Digits())))
}

// Before returns the shortest key strictly between the bottom of the key
// space and upper, for inserting in front of the first element. Panics if
// upper is empty.
func Before(upper Key) Key {
	return FromDigits(digits.Between(digits.Zero(), digits.Finite(upper.Digits())))
}

// After returns the shortest key strictly between lower and the top of the
// key space, for appending behind the last element. Panics if lower is
// empty.
func After(lower Key) Key {
	return FromDigits(digits.Between(digits.Finite(lower.Digits()), digits.One()))
}

// String returns the key text itself.
func (k Key) String() string {
	return string(k)
}
