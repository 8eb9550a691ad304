package base79_test

import (
	"math/rand"
	"testing"

	"github.com/dchenk/base79"
	"github.com/stretchr/testify/require"
)

func TestMid(t *testing.T) {
	require.Equal(t, base79.Key("R"), base79.Mid())
}

func TestFirstInsertions(t *testing.T) {
	seed := base79.Mid()
	require.Equal(t, base79.Key(">"), base79.Before(seed))
	require.Equal(t, base79.Key("f"), base79.After(seed))
	require.Equal(t, base79.Key("H"), base79.Between(">", seed))
	require.Equal(t, base79.Key("RR"), base79.Between(seed, "S"))
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper base79.Key
		want         base79.Key
	}{
		{"wide gap", ">", "R", "H"},
		{"adjacent characters", "R", "S", "RR"},
		{"extend under longer upper", "R", "RR", "R>"},
		{"shared prefix", "R>", "RR", "RH"},
		{"lower is prefix of upper", "R", "R+f", "R+H"},
		{"climb to adjacent prefix", "+y", ",", "+yR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base79.Between(tt.lower, tt.upper)
			require.Equal(t, tt.want, got)
			require.Less(t, string(tt.lower), string(got))
			require.Less(t, string(got), string(tt.upper))
		})
	}
}

func TestBetweenPanics(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper base79.Key
	}{
		{"equal", "R", "R"},
		{"crossed", "S", "R"},
		{"empty lower", "", "R"},
		{"trailing minimum digit", "R", "R+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() { base79.Between(tt.lower, tt.upper) })
		})
	}
}

func TestBeforeAfterPanicOnEmpty(t *testing.T) {
	require.Panics(t, func() { base79.Before("") })
	require.Panics(t, func() { base79.After("") })
}

// A key of minimum characters decodes to all-zero digits, which is the value
// 0 itself: there is no room below it.
func TestBeforePanicsOnZeroValuedKey(t *testing.T) {
	require.Panics(t, func() { base79.Before("+") })
	require.Panics(t, func() { base79.Before("++") })
}

// TestRandomInsertions fills a list with ten thousand keys inserted at
// random positions and checks that string order never breaks and that keys
// stay short.
func TestRandomInsertions(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	keys := []base79.Key{base79.Mid()}
	maxLen := 1

	for n := 0; n < 10000; n++ {
		i := rnd.Intn(len(keys) + 1)
		var key base79.Key
		switch {
		case i == 0:
			key = base79.Before(keys[0])
		case i == len(keys):
			key = base79.After(keys[len(keys)-1])
		default:
			key = base79.Between(keys[i-1], keys[i])
		}

		if i > 0 {
			require.Less(t, string(keys[i-1]), string(key), "iteration %d", n)
		}
		if i < len(keys) {
			require.Less(t, string(key), string(keys[i]), "iteration %d", n)
		}
		if len(key) > maxLen {
			maxLen = len(key)
		}

		keys = append(keys, "")
		copy(keys[i+1:], keys[i:])
		keys[i] = key
	}

	require.LessOrEqual(t, maxLen, 64)
	t.Logf("longest of %d keys: %d characters", len(keys), maxLen)
}

// TestAppendGrowth checks the append-heavy pattern: pushing to the back of
// a list halves the remaining headroom each time, so keys gain a character
// only about every seventh push.
func TestAppendGrowth(t *testing.T) {
	key := base79.Mid()
	for n := 0; n < 140; n++ {
		next := base79.After(key)
		require.Less(t, string(key), string(next), "iteration %d", n)
		key = next
	}
	require.LessOrEqual(t, len(key), 24)
}
