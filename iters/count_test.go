package iters_test

import (
	"testing"

	"github.com/dchenk/base79/iters"
	"github.com/stretchr/testify/require"
)

func TestConsumeAndCount(t *testing.T) {
	it := NewMockIterator(
		[]string{"a", "b", "c"},
		[]int{1, 2, 3},
	)
	require.Equal(t, uint(3), iters.ConsumeAndCount(it))
}
