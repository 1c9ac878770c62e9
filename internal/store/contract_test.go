package store

import (
	"context"
	"testing"

	"libmgmt/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookA = entity.NewBook("978-4-7405-2824-6", "Anything will do", "Author A", "First")
	bookB = entity.NewBook("978-7-6499-1995-5", "Another one", "Author B", "Second")
)

// testRepositoryContract runs the behaviour every BookRepository backend must
// share. newRepo must return an empty repository.
func testRepositoryContract(t *testing.T, newRepo func(t *testing.T) BookRepository) {
	ctx := context.Background()

	t.Run("add then get", func(t *testing.T) {
		repo := newRepo(t)

		res := repo.Add(ctx, bookA)
		require.True(t, res.OK(), res.Error())
		assert.Equal(t, bookA, res.Value)

		got := repo.GetByKey(ctx, bookA.ISBN)
		require.True(t, got.OK(), got.Error())
		assert.Equal(t, bookA, got.Value)
	})

	t.Run("duplicate add keeps the first", func(t *testing.T) {
		repo := newRepo(t)
		require.True(t, repo.Add(ctx, bookA).OK())

		dup := bookA
		dup.Title = "Different"
		res := repo.Add(ctx, dup)
		assert.Equal(t, KindKeyDuplicate, res.Err)
		assert.False(t, res.OK())

		got := repo.GetByKey(ctx, bookA.ISBN)
		require.True(t, got.OK())
		assert.Equal(t, bookA.Title, got.Value.Title)

		all := repo.GetAll(ctx)
		require.True(t, all.OK())
		assert.Len(t, all.Value, 1)
	})

	t.Run("get missing", func(t *testing.T) {
		repo := newRepo(t)
		res := repo.GetByKey(ctx, bookA.ISBN)
		assert.Equal(t, KindKeyNotFound, res.Err)
		assert.NotEmpty(t, res.Message)
	})

	t.Run("get all", func(t *testing.T) {
		repo := newRepo(t)

		empty := repo.GetAll(ctx)
		require.True(t, empty.OK())
		assert.Empty(t, empty.Value)

		require.True(t, repo.Add(ctx, bookA).OK())
		require.True(t, repo.Add(ctx, bookB).OK())

		all := repo.GetAll(ctx)
		require.True(t, all.OK())
		assert.ElementsMatch(t, []entity.Book{bookA, bookB}, all.Value)
	})

	t.Run("update", func(t *testing.T) {
		repo := newRepo(t)

		missing := repo.Update(ctx, bookA)
		assert.Equal(t, KindKeyNotFound, missing.Err)

		require.True(t, repo.Add(ctx, bookA).OK())
		changed := entity.NewBook(bookA.ISBN, "Just anything", "Someone else", "Changed")
		res := repo.Update(ctx, changed)
		require.True(t, res.OK(), res.Error())
		assert.Equal(t, changed, res.Value)

		got := repo.GetByKey(ctx, bookA.ISBN)
		require.True(t, got.OK())
		assert.Equal(t, changed, got.Value)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)

		missing := repo.Delete(ctx, bookA.ISBN)
		assert.Equal(t, KindKeyNotFound, missing.Err)
		assert.False(t, missing.Value)

		require.True(t, repo.Add(ctx, bookA).OK())
		require.True(t, repo.Add(ctx, bookB).OK())

		res := repo.Delete(ctx, bookA.ISBN)
		require.True(t, res.OK(), res.Error())
		assert.True(t, res.Value)
		assert.Equal(t, KindNone, res.Err)

		all := repo.GetAll(ctx)
		require.True(t, all.OK())
		assert.Equal(t, []entity.Book{bookB}, all.Value)
		assert.Equal(t, KindKeyNotFound, repo.GetByKey(ctx, bookA.ISBN).Err)
	})
}
