// Package digits implements arbitrary-precision base-79 fractions in the
// open interval (0, 1), stored as bare digit slices, together with the
// midpoint search that makes them usable as position keys in an ordered
// collection.
//
// A Sequence spells out the fractional digits after an implicit leading
// "0." in base 79: the digit at index 0 weighs 79^-1, the next one 79^-2,
// and so on. Comparing two sequences digit by digit, shorter-is-smaller on
// a shared prefix, agrees exactly with comparing the fractions they
// represent. That equivalence is what lets the encoded form of a sequence
// be sorted with plain string comparison, and every function in this
// package preserves it.
//
// All arithmetic is on small integers in [-1, 79]. No floating point is
// involved anywhere; the sortability guarantee depends on exact integer
// comparisons.
package digits

import "bytes"

// Base is the size of the digit alphabet.
const Base = 79

// The two virtual digits sit one step outside the domain [0, Base-1]. They
// are what the absolute bounds Zero and One read as inside Between, so that
// the exact values 0 and 1 never need digits of their own.
const (
	virtualLow  = -1
	virtualHigh = Base
)

// midDigit is the digit halfway between the virtual bounds, 39.
const midDigit = (virtualLow + virtualHigh) / 2

// Sequence is a base-79 fraction: digits in most-significant-first order,
// each in [0, Base-1]. Sequences are immutable values; every operation in
// this package returns a fresh one and never writes into an argument.
type Sequence []uint8

// Mid returns the one-digit sequence [39] in the exact middle of the key
// space. It is the only way to produce a Sequence without reference to an
// existing one, and serves as the first key of an empty collection.
func Mid() Sequence {
	return Sequence{midDigit}
}

// Compare compares two sequences digit by digit with shorter-is-smaller on
// a shared prefix, returning -1, 0 or +1. The result also orders the
// represented fractions.
func Compare(a, b Sequence) int {
	return bytes.Compare(a, b)
}
