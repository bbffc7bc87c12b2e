package service

import (
	"context"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/store"
)

// AuthorService provides catalog operations for authors.
type AuthorService interface {
	Create(ctx context.Context, author domain.Author) (*domain.Author, error)
	Get(ctx context.Context, id int64) (*domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
	Update(ctx context.Context, id int64, author domain.Author) (*domain.Author, error)
	Delete(ctx context.Context, id int64) error
}

type authorService struct {
	store *store.Store
}

// NewAuthorService creates an AuthorService backed by the given store.
func NewAuthorService(st *store.Store) AuthorService {
	return &authorService{store: st}
}

var authorMessages = map[string]string{
	"Name": "Author name cannot be empty.",
}

// Create stores a new author. Unlike books and customers, authors may
// arrive with a caller-supplied ID; it is honored unless already taken.
// A zero ID means "assign the next one".
func (s *authorService) Create(ctx context.Context, author domain.Author) (*domain.Author, error) {
	const op = "author.create"

	if err := checkStruct(op, author, authorMessages); err != nil {
		return nil, err
	}

	err := s.store.Update(func(tx *store.Tx) error {
		if author.ID != 0 {
			if _, ok := tx.Author(author.ID); ok {
				return domain.Invalid(op, "Author ID already exists.")
			}
		} else {
			author.ID = tx.NextAuthorID()
		}
		tx.PutAuthor(author)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &author, nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*domain.Author, error) {
	const op = "author.get"

	var author domain.Author
	err := s.store.View(func(tx *store.Tx) error {
		a, ok := tx.Author(id)
		if !ok {
			return domain.NotFound(op, "Author", id)
		}
		author = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &author, nil
}

func (s *authorService) List(ctx context.Context) ([]domain.Author, error) {
	var authors []domain.Author
	err := s.store.View(func(tx *store.Tx) error {
		authors = tx.Authors()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return authors, nil
}

func (s *authorService) Update(ctx context.Context, id int64, author domain.Author) (*domain.Author, error) {
	const op = "author.update"

	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Author(id); !ok {
			return domain.NotFound(op, "Author", id)
		}
		if err := checkStruct(op, author, authorMessages); err != nil {
			return err
		}
		author.ID = id
		tx.PutAuthor(author)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &author, nil
}

// Delete removes an author. Authors still referenced by at least one book
// are protected by a referential guard.
func (s *authorService) Delete(ctx context.Context, id int64) error {
	const op = "author.delete"

	return s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Author(id); !ok {
			return domain.NotFound(op, "Author", id)
		}
		for _, b := range tx.Books() {
			if b.AuthorID == id {
				return domain.Invalid(op, "Cannot delete author with existing books.")
			}
		}
		tx.DeleteAuthor(id)
		return nil
	})
}
