package digits

import "fmt"

// Canonical returns s with trailing zero digits dropped. Trailing zeros do
// not change the represented fraction but do change the string encoding,
// and only the shortest spelling sorts correctly against its own
// extensions. The result shares s's backing array and is empty if s was
// all zeros.
func (s Sequence) Canonical() Sequence {
	n := len(s)
	for n > 0 && s[n-1] == 0 {
		n--
	}
	return s[:n]
}

// IsCanonical reports whether s is non-empty and ends in a non-zero digit.
func (s Sequence) IsCanonical() bool {
	return len(s) > 0 && s[len(s)-1] != 0
}

// Validate checks that s is a well-formed canonical sequence: non-empty,
// every digit below Base, and no trailing zero digit. Sequences produced
// by Mid and Between always pass.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty sequence")
	}
	for i, d := range s {
		if d >= Base {
			return fmt.Errorf("digit %d at position %d is out of range", d, i)
		}
	}
	if s[len(s)-1] == 0 {
		return fmt.Errorf("trailing zero digit")
	}
	return nil
}
