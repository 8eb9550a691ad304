package iters_test

import (
	"encoding/binary"
	"testing"

	"github.com/dchenk/base79/iters"
	"github.com/stretchr/testify/require"
)

func TestRewindSeek(t *testing.T) {
	it := iters.RewindSeek[string, int](
		NewMockIterator(
			[]string{"a", "b", "c"},
			[]int{1, 2, 3},
		),
		binary.BigEndian.AppendUint64(nil, 1),
	)
	defer it.Close()

	actual, err := iters.Collect[string, int](it)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, actual)
}
