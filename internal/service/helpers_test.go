package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/events"
	"github.com/saga-books/saga/internal/store"
)

// putAuthor inserts an author directly, bypassing the service layer.
func putAuthor(t *testing.T, st *store.Store, a domain.Author) domain.Author {
	t.Helper()
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		if a.ID == 0 {
			a.ID = tx.NextAuthorID()
		}
		tx.PutAuthor(a)
		return nil
	}))
	return a
}

// putBook inserts a book directly, bypassing the service layer.
func putBook(t *testing.T, st *store.Store, b domain.Book) domain.Book {
	t.Helper()
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		if b.ID == 0 {
			b.ID = tx.NextBookID()
		}
		tx.PutBook(b)
		return nil
	}))
	return b
}

// putCustomer inserts a customer with an empty cart and order history,
// bypassing the service layer (and bcrypt).
func putCustomer(t *testing.T, st *store.Store, c domain.Customer) domain.Customer {
	t.Helper()
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		if c.ID == 0 {
			c.ID = tx.NextCustomerID()
		}
		tx.PutCustomer(c)
		tx.PutCart(domain.NewCart(c.ID))
		tx.InitOrders(c.ID)
		return nil
	}))
	return c
}

// getBook reads a book directly from the store.
func getBook(t *testing.T, st *store.Store, id int64) domain.Book {
	t.Helper()
	var book domain.Book
	require.NoError(t, st.View(func(tx *store.Tx) error {
		b, ok := tx.Book(id)
		require.True(t, ok, "book %d missing", id)
		book = b
		return nil
	}))
	return book
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	subjects []string
	payloads []any
	err      error
}

func (p *capturingPublisher) Publish(ctx context.Context, subject string, v any) error {
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, v)
	return p.err
}

func (p *capturingPublisher) Close() {}

var _ events.Publisher = (*capturingPublisher)(nil)
