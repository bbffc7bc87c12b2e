package service

import (
	"context"
	"time"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/store"
)

// BookService provides catalog operations for books.
type BookService interface {
	Create(ctx context.Context, book domain.Book) (*domain.Book, error)
	Get(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Update(ctx context.Context, id int64, book domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id int64) error
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.Book, error)
}

type bookService struct {
	store *store.Store
}

// NewBookService creates a BookService backed by the given store.
func NewBookService(st *store.Store) BookService {
	return &bookService{store: st}
}

var bookMessages = map[string]string{
	"Title": "Book title cannot be empty.",
	"ISBN":  "Book ISBN cannot be empty.",
	"Price": "Book price must be greater than zero.",
	"Stock": "Book stock cannot be negative.",
}

func validateBook(op string, b domain.Book) error {
	if err := checkStruct(op, b, bookMessages); err != nil {
		return err
	}
	if b.PublicationYear > time.Now().Year() {
		return domain.Invalid(op, "Publication year cannot be in the future.")
	}
	return nil
}

// Create validates the book, resolves its author and assigns the next
// book ID. Any ID in the input is ignored.
func (s *bookService) Create(ctx context.Context, book domain.Book) (*domain.Book, error) {
	const op = "book.create"

	if err := validateBook(op, book); err != nil {
		return nil, err
	}

	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Author(book.AuthorID); !ok {
			return domain.NotFound(op, "Author", book.AuthorID)
		}
		book.ID = tx.NextBookID()
		tx.PutBook(book)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	const op = "book.get"

	var book domain.Book
	err := s.store.View(func(tx *store.Tx) error {
		b, ok := tx.Book(id)
		if !ok {
			return domain.NotFound(op, "Book", id)
		}
		book = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (s *bookService) List(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	err := s.store.View(func(tx *store.Tx) error {
		books = tx.Books()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// Update replaces the stored book. The path ID wins over any ID carried
// in the payload.
func (s *bookService) Update(ctx context.Context, id int64, book domain.Book) (*domain.Book, error) {
	const op = "book.update"

	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Book(id); !ok {
			return domain.NotFound(op, "Book", id)
		}
		if err := validateBook(op, book); err != nil {
			return err
		}
		if _, ok := tx.Author(book.AuthorID); !ok {
			return domain.NotFound(op, "Author", book.AuthorID)
		}
		book.ID = id
		tx.PutBook(book)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// Delete removes a book unconditionally. Orders hold title and price
// snapshots, so no downstream reference check is needed.
func (s *bookService) Delete(ctx context.Context, id int64) error {
	const op = "book.delete"

	return s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Book(id); !ok {
			return domain.NotFound(op, "Book", id)
		}
		tx.DeleteBook(id)
		return nil
	})
}

func (s *bookService) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Book, error) {
	const op = "book.list_by_author"

	var books []domain.Book
	err := s.store.View(func(tx *store.Tx) error {
		if _, ok := tx.Author(authorID); !ok {
			return domain.NotFound(op, "Author", authorID)
		}
		books = []domain.Book{}
		for _, b := range tx.Books() {
			if b.AuthorID == authorID {
				books = append(books, b)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}
