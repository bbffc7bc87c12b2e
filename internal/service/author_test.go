package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/store"
)

func TestAuthorCreate_AssignsID(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthorService(store.New())

	created, err := svc.Create(ctx, domain.Author{Name: "George Orwell", Biography: "English novelist"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestAuthorCreate_HonorsClientID(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthorService(store.New())

	created, err := svc.Create(ctx, domain.Author{ID: 42, Name: "George Orwell"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	_, err = svc.Create(ctx, domain.Author{ID: 42, Name: "Impostor"})
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Equal(t, "Author ID already exists.", domain.ErrorMessage(err))
}

func TestAuthorCreate_BlankName(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthorService(store.New())

	for _, name := range []string{"", "   "} {
		_, err := svc.Create(ctx, domain.Author{Name: name})
		require.Error(t, err)
		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		assert.Equal(t, "Author name cannot be empty.", domain.ErrorMessage(err))
	}
}

func TestAuthorUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthorService(store.New())

	created, err := svc.Create(ctx, domain.Author{Name: "George Orwell"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, domain.Author{ID: 999, Name: "Eric Blair", Biography: "pen name Orwell"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Eric Blair", updated.Name)

	_, err = svc.Update(ctx, 77, domain.Author{Name: "Nobody"})
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	assert.Equal(t, "Author with ID 77 not found.", domain.ErrorMessage(err))
}

func TestAuthorDelete_ReferentialGuard(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	svc := NewAuthorService(st)

	author, err := svc.Create(ctx, domain.Author{Name: "George Orwell"})
	require.NoError(t, err)
	book := putBook(t, st, domain.Book{Title: "1984", AuthorID: author.ID, ISBN: "978-0-452-28423-4", Price: 10, Stock: 1})

	err = svc.Delete(ctx, author.ID)
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Equal(t, "Cannot delete author with existing books.", domain.ErrorMessage(err))

	// With the book gone the delete goes through.
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		tx.DeleteBook(book.ID)
		return nil
	}))
	require.NoError(t, svc.Delete(ctx, author.ID))

	_, err = svc.Get(ctx, author.ID)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestAuthorList(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthorService(store.New())

	authors, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)

	_, err = svc.Create(ctx, domain.Author{ID: 5, Name: "b"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.Author{ID: 2, Name: "a"})
	require.NoError(t, err)

	authors, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, int64(2), authors[0].ID)
	assert.Equal(t, int64(5), authors[1].ID)
}
