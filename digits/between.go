package digits

// Between returns the shortest sequence whose value lies strictly between
// lo and hi, extending precision one digit at a time only when forced to.
// The result is deterministic and never ends in a zero digit, so it is
// always in canonical form.
//
// The bounds must satisfy value(lo) < value(hi). Equal or crossed bounds
// are a programming error and panic, as does a finite bound with no digits
// (the empty sequence would denote the value 0, which only Zero may stand
// for).
//
// The search scans both bounds position by position. A gap of two or more
// between the digits read at a position fits the floored midpoint digit
// strictly inside it, which terminates the scan. A gap of exactly one
// copies the lower digit; the copy is already strictly below hi no matter
// what follows it, so from then on only the lower bound constrains the
// search and hi is released to One. Equal digits are copied with both
// bounds still binding.
//
// One corner needs care: a floored midpoint of 0 can only happen against
// the Zero bound, and a terminal 0 digit would make the result equal to
// Zero itself. When the upper digit is 2 the digit 1 still fits strictly
// between; when it is 1 no single digit does, so a 0 is emitted (settling
// the upper bound) and the scan bisects the now fully open interval one
// position deeper.
func Between(lo, hi Bound) Sequence {
	if lo.kind != finite && lo.kind == hi.kind {
		panic("digits: between called with equal bounds")
	}
	if lo.kind == finite && len(lo.seq) == 0 || hi.kind == finite && len(hi.seq) == 0 {
		panic("digits: between called with an empty sequence")
	}

	out := make(Sequence, 0, max(len(lo.seq), len(hi.seq))+2)
	for i := 0; ; i++ {
		a, b := lo.digit(i), hi.digit(i)
		switch gap := b - a; {
		case gap >= 2:
			if m := (a + b) / 2; m > 0 {
				return append(out, uint8(m))
			}
			// Only Zero reads -1, so m == 0 means a == -1 and
			// b is 1 or 2.
			if b == 2 {
				return append(out, 1)
			}
			out = append(out, 0)
			hi = One()
		case gap == 1:
			if a < 0 {
				// hi reads a 0 digit here while lo is Zero. With
				// no explicit digit left, hi is all zeros from
				// here on and its value is exactly 0, the same as
				// the lower bound.
				if hi.exhausted(i) {
					panic("digits: between called with equal bounds")
				}
				// Copying the 0 settles neither bound.
				out = append(out, 0)
				continue
			}
			out = append(out, uint8(a))
			hi = One()
		case gap == 0:
			if lo.exhausted(i) && hi.exhausted(i) {
				panic("digits: between called with equal bounds")
			}
			out = append(out, uint8(a))
		default:
			panic("digits: between called with crossed bounds")
		}
	}
}
