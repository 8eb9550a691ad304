package iters_test

import (
	"testing"

	"github.com/dchenk/base79/iters"
	"github.com/dchenk/base79/kv"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	var it kv.Iterator[string, int] = NewMockIterator(
		[]string{"a", "b", "c"},
		[]int{1, 2, 3},
	)

	collected, err := iters.Collect(it)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, collected)
}

func TestCollectKeys(t *testing.T) {
	var it kv.Iterator[string, int] = NewMockIterator(
		[]string{"a", "b", "c"},
		[]int{1, 2, 3},
	)

	require.Equal(t, []string{"a", "b", "c"}, iters.CollectKeys(it))
}
