// Package bootstrap seeds the store with starter data.
package bootstrap

import (
	"fmt"

	"github.com/saga-books/saga/internal/auth"
	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/store"
)

// Seed loads the demo catalog: two authors, three books and one customer
// with an empty cart and order history.
func Seed(st *store.Store) error {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("failed to hash sample password: %w", err)
	}

	return st.Update(func(tx *store.Tx) error {
		rowling := domain.Author{
			ID:        tx.NextAuthorID(),
			Name:      "J.K. Rowling",
			Biography: "British author best known for the Harry Potter series.",
		}
		orwell := domain.Author{
			ID:        tx.NextAuthorID(),
			Name:      "George Orwell",
			Biography: "English novelist, essayist, and critic.",
		}
		tx.PutAuthor(rowling)
		tx.PutAuthor(orwell)

		books := []domain.Book{
			{Title: "Harry Potter and the Philosopher's Stone", AuthorID: rowling.ID, ISBN: "978-0-7475-3269-9", PublicationYear: 1997, Price: 15.99, Stock: 100},
			{Title: "Harry Potter and the Chamber of Secrets", AuthorID: rowling.ID, ISBN: "978-0-7475-3849-9", PublicationYear: 1998, Price: 16.99, Stock: 85},
			{Title: "1984", AuthorID: orwell.ID, ISBN: "978-0-451-52493-5", PublicationYear: 1949, Price: 12.99, Stock: 50},
		}
		for _, b := range books {
			b.ID = tx.NextBookID()
			tx.PutBook(b)
		}

		customer := domain.Customer{
			ID:           tx.NextCustomerID(),
			Name:         "John Doe",
			Email:        "john.doe@example.com",
			PasswordHash: hash,
		}
		tx.PutCustomer(customer)
		tx.PutCart(domain.NewCart(customer.ID))
		tx.InitOrders(customer.ID)

		return nil
	})
}
