package testutil

import (
	"testing"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// PrepareDB creates an in-memory BadgerDB for testing.
func PrepareDB(t testing.TB) *badger.DB {
	opt := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(opt)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

// PrepareTxn creates an in-memory BadgerDB and a transaction for testing.
func PrepareTxn(t testing.TB, update bool) *badger.Txn {
	txn := PrepareDB(t).NewTransaction(update)
	t.Cleanup(func() {
		txn.Discard()
	})
	return txn
}
