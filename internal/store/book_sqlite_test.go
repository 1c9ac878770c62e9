package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteTestDB(t *testing.T) *BookSQLite {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBookSQLite(db)
}

func TestBookSQLite(t *testing.T) {
	testRepositoryContract(t, func(t *testing.T) BookRepository {
		return setupSQLiteTestDB(t)
	})
}

func TestBookSQLite_ClosedDatabaseIsStorageFault(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	repo := NewBookSQLite(db)
	require.NoError(t, db.Close())

	ctx := context.Background()
	assert.Equal(t, KindOther, repo.Add(ctx, bookA).Err)
	assert.Equal(t, KindOther, repo.GetByKey(ctx, bookA.ISBN).Err)
	assert.Equal(t, KindOther, repo.GetAll(ctx).Err)
	assert.Equal(t, KindOther, repo.Update(ctx, bookA).Err)
	assert.Equal(t, KindOther, repo.Delete(ctx, bookA.ISBN).Err)
}
