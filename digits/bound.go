package digits

// Bound is one side of a Between search: either a finite digit sequence or
// one of the two absolute boundaries of the key space. The boundaries stand
// for the exact values 0 and 1, which no finite sequence represents; inside
// the search they read as the virtual digits -1 and Base at every position.
type Bound struct {
	seq  Sequence
	kind boundKind
}

type boundKind int8

const (
	finite boundKind = iota
	zeroBound
	oneBound
)

// Zero returns the bound standing for the exact value 0, below every
// sequence.
func Zero() Bound { return Bound{kind: zeroBound} }

// One returns the bound standing for the exact value 1, above every
// sequence.
func One() Bound { return Bound{kind: oneBound} }

// Finite wraps a digit sequence as a bound.
func Finite(seq Sequence) Bound { return Bound{seq: seq} }

// digit reads the bound's digit at position i. The absolute bounds read as
// their virtual digit everywhere. A finite sequence continues with zeros
// past its end: a sequence and the same sequence padded with trailing zeros
// represent the same fraction.
func (b Bound) digit(i int) int {
	switch b.kind {
	case zeroBound:
		return virtualLow
	case oneBound:
		return virtualHigh
	}
	if i < len(b.seq) {
		return int(b.seq[i])
	}
	return 0
}

// exhausted reports whether the bound carries no explicit digit at or past
// position i, so that it reads as zeros from there on.
func (b Bound) exhausted(i int) bool {
	return b.kind == finite && i >= len(b.seq)
}
