package list_test

import (
	"sort"
	"testing"

	"github.com/dchenk/base79"
	"github.com/dchenk/base79/iters"
	"github.com/dchenk/base79/list"
	"github.com/dchenk/base79/testutil"
	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func prepareList(t *testing.T) *list.Instance[testutil.SampleTask] {
	txn := testutil.PrepareTxn(t, true)
	return list.New[testutil.SampleTask]([]byte("tasks")).Instantiate(txn)
}

func titles(t *testing.T, ins *list.Instance[testutil.SampleTask]) []string {
	t.Helper()

	it := ins.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	var out []string
	for it.Rewind(); it.Valid(); it.Next() {
		item, err := it.Value()
		require.NoError(t, err)
		require.Equal(t, it.Key(), item.Pos)
		out = append(out, item.Value.Title)
	}
	return out
}

func TestPushBack(t *testing.T) {
	ins := prepareList(t)

	first, err := ins.PushBack(testutil.NewSampleTask("a"))
	require.NoError(t, err)
	require.Equal(t, base79.Mid(), first.Pos)
	require.Equal(t, uint64(1), first.Serial)

	_, err = ins.PushBack(testutil.NewSampleTask("b"))
	require.NoError(t, err)
	third, err := ins.PushBack(testutil.NewSampleTask("c"))
	require.NoError(t, err)
	require.Equal(t, uint64(3), third.Serial)

	require.Equal(t, []string{"a", "b", "c"}, titles(t, ins))

	n, err := ins.Len()
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
}

func TestPushFront(t *testing.T) {
	ins := prepareList(t)

	for _, title := range []string{"a", "b", "c"} {
		_, err := ins.PushFront(testutil.NewSampleTask(title))
		require.NoError(t, err)
	}

	require.Equal(t, []string{"c", "b", "a"}, titles(t, ins))
}

func TestInsert(t *testing.T) {
	ins := prepareList(t)

	a, err := ins.PushBack(testutil.NewSampleTask("a"))
	require.NoError(t, err)
	b, err := ins.PushBack(testutil.NewSampleTask("b"))
	require.NoError(t, err)

	x, err := ins.InsertBefore(b.Pos, testutil.NewSampleTask("x"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "x", "b"}, titles(t, ins))
	require.Less(t, string(a.Pos), string(x.Pos))
	require.Less(t, string(x.Pos), string(b.Pos))

	_, err = ins.InsertAfter(a.Pos, testutil.NewSampleTask("y"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "y", "x", "b"}, titles(t, ins))

	_, err = ins.InsertBefore(a.Pos, testutil.NewSampleTask("z"))
	require.NoError(t, err)
	require.Equal(t, []string{"z", "a", "y", "x", "b"}, titles(t, ins))

	_, err = ins.InsertAfter(b.Pos, testutil.NewSampleTask("w"))
	require.NoError(t, err)
	require.Equal(t, []string{"z", "a", "y", "x", "b", "w"}, titles(t, ins))
}

func TestInsertMissingAnchor(t *testing.T) {
	ins := prepareList(t)

	_, err := ins.InsertBefore(base79.Mid(), testutil.NewSampleTask("a"))
	require.ErrorIs(t, err, list.ErrNotFound)
}

func TestMove(t *testing.T) {
	ins := prepareList(t)

	a, _ := ins.PushBack(testutil.NewSampleTask("a"))
	b, _ := ins.PushBack(testutil.NewSampleTask("b"))
	c, err := ins.PushBack(testutil.NewSampleTask("c"))
	require.NoError(t, err)

	moved, err := ins.MoveBefore(c.Pos, a.Pos)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, titles(t, ins))
	require.Equal(t, c.ID, moved.ID)
	require.Equal(t, c.Serial, moved.Serial)

	_, err = ins.Get(c.Pos)
	require.ErrorIs(t, err, list.ErrNotFound)

	moved, err = ins.MoveAfter(moved.Pos, b.Pos)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, titles(t, ins))
	require.Equal(t, c.ID, moved.ID)

	n, err := ins.Len()
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
}

func TestMoveRelativeToItself(t *testing.T) {
	ins := prepareList(t)

	a, err := ins.PushBack(testutil.NewSampleTask("a"))
	require.NoError(t, err)

	_, err = ins.MoveBefore(a.Pos, a.Pos)
	require.Error(t, err)
}

func TestUpdate(t *testing.T) {
	ins := prepareList(t)

	a, err := ins.PushBack(testutil.NewSampleTask("a"))
	require.NoError(t, err)

	updated, err := ins.Update(a.Pos, testutil.SampleTask{Title: "a", Done: true})
	require.NoError(t, err)
	require.Equal(t, a.ID, updated.ID)
	require.Equal(t, a.Serial, updated.Serial)
	require.Equal(t, a.Pos, updated.Pos)

	got, err := ins.Get(a.Pos)
	require.NoError(t, err)
	require.True(t, got.Value.Done)
}

func TestDelete(t *testing.T) {
	ins := prepareList(t)

	_, _ = ins.PushBack(testutil.NewSampleTask("a"))
	b, _ := ins.PushBack(testutil.NewSampleTask("b"))
	_, err := ins.PushBack(testutil.NewSampleTask("c"))
	require.NoError(t, err)

	require.NoError(t, ins.Delete(b.Pos))
	require.Equal(t, []string{"a", "c"}, titles(t, ins))

	require.ErrorIs(t, ins.Delete(b.Pos), list.ErrNotFound)

	n, err := ins.Len()
	require.NoError(t, err)
	require.Equal(t, uint64(2), n)

	ok, err := ins.Contains(b.Serial)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetMissing(t *testing.T) {
	ins := prepareList(t)

	_, err := ins.Get(base79.Mid())
	require.ErrorIs(t, err, list.ErrNotFound)
}

func TestFrontBack(t *testing.T) {
	ins := prepareList(t)

	front, err := ins.Front()
	require.NoError(t, err)
	require.Nil(t, front)
	back, err := ins.Back()
	require.NoError(t, err)
	require.Nil(t, back)

	for _, title := range []string{"a", "b", "c"} {
		_, err := ins.PushBack(testutil.NewSampleTask(title))
		require.NoError(t, err)
	}

	front, err = ins.Front()
	require.NoError(t, err)
	require.Equal(t, "a", front.Value.Title)

	back, err = ins.Back()
	require.NoError(t, err)
	require.Equal(t, "c", back.Value.Title)
}

// Front inserts walk the list forward only, so the backward paths cannot
// lean on state left behind by PushBack.
func TestBackAfterPushFront(t *testing.T) {
	ins := prepareList(t)

	for _, title := range []string{"c", "b", "a"} {
		_, err := ins.PushFront(testutil.NewSampleTask(title))
		require.NoError(t, err)
	}

	back, err := ins.Back()
	require.NoError(t, err)
	require.NotNil(t, back)
	require.Equal(t, "c", back.Value.Title)

	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	it := ins.NewIterator(opts)
	defer it.Close()

	var out []string
	for it.Rewind(); it.Valid(); it.Next() {
		item, err := it.Value()
		require.NoError(t, err)
		out = append(out, item.Value.Title)
	}
	require.Equal(t, []string{"c", "b", "a"}, out)
}

func TestReverseIteration(t *testing.T) {
	ins := prepareList(t)

	for _, title := range []string{"a", "b", "c"} {
		_, err := ins.PushBack(testutil.NewSampleTask(title))
		require.NoError(t, err)
	}

	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	it := ins.NewIterator(opts)
	defer it.Close()

	var out []string
	for it.Rewind(); it.Valid(); it.Next() {
		item, err := it.Value()
		require.NoError(t, err)
		out = append(out, item.Value.Title)
	}
	require.Equal(t, []string{"c", "b", "a"}, out)
}

func TestIteratorSeek(t *testing.T) {
	ins := prepareList(t)

	_, _ = ins.PushBack(testutil.NewSampleTask("a"))
	b, _ := ins.PushBack(testutil.NewSampleTask("b"))
	_, err := ins.PushBack(testutil.NewSampleTask("c"))
	require.NoError(t, err)

	it := ins.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	it.Seek([]byte(b.Pos))
	require.True(t, it.Valid())
	require.Equal(t, b.Pos, it.Key())
}

func TestPagination(t *testing.T) {
	ins := prepareList(t)

	for _, title := range []string{"a", "b", "c", "d", "e"} {
		_, err := ins.PushBack(testutil.NewSampleTask(title))
		require.NoError(t, err)
	}

	it := iters.Limit[base79.Key, *list.Item[testutil.SampleTask]](
		iters.SkipN[base79.Key, *list.Item[testutil.SampleTask]](
			ins.NewIterator(badger.DefaultIteratorOptions),
			1,
		),
		2,
	)
	defer it.Close()

	items, err := iters.Collect[base79.Key, *list.Item[testutil.SampleTask]](it)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "b", items[0].Value.Title)
	require.Equal(t, "c", items[1].Value.Title)
}

func TestKeysStaySorted(t *testing.T) {
	ins := prepareList(t)

	seed, err := ins.PushBack(testutil.NewSampleTask("seed"))
	require.NoError(t, err)

	anchor := seed.Pos
	for i := 0; i < 100; i++ {
		var item *list.Item[testutil.SampleTask]
		switch i % 4 {
		case 0:
			item, err = ins.PushBack(testutil.NewSampleTask("t"))
		case 1:
			item, err = ins.PushFront(testutil.NewSampleTask("t"))
		case 2:
			item, err = ins.InsertBefore(anchor, testutil.NewSampleTask("t"))
		default:
			item, err = ins.InsertAfter(anchor, testutil.NewSampleTask("t"))
		}
		require.NoError(t, err)
		anchor = item.Pos
	}

	it := ins.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	keys := iters.CollectKeys[base79.Key, *list.Item[testutil.SampleTask]](it)

	require.Len(t, keys, 101)
	require.True(t, sort.SliceIsSorted(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	}))

	n, err := ins.Len()
	require.NoError(t, err)
	require.Equal(t, uint64(101), n)
}

func TestAcrossTransactions(t *testing.T) {
	db := testutil.PrepareDB(t)
	store := list.New[testutil.SampleTask]([]byte("tasks"))

	err := db.Update(func(txn *badger.Txn) error {
		ins := store.Instantiate(txn)
		for _, title := range []string{"a", "b"} {
			if _, err := ins.PushBack(testutil.NewSampleTask(title)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	err = db.View(func(txn *badger.Txn) error {
		ins := store.Instantiate(txn)

		n, err := ins.Len()
		require.NoError(t, err)
		require.Equal(t, uint64(2), n)

		require.Equal(t, []string{"a", "b"}, titles(t, ins))
		return nil
	})
	require.NoError(t, err)
}
