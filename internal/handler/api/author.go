package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/service"
)

// AuthorHandler serves the /authors resource, including the nested book
// listing.
type AuthorHandler struct {
	authors service.AuthorService
	books   service.BookService
}

func NewAuthorHandler(authors service.AuthorService, books service.BookService) *AuthorHandler {
	return &AuthorHandler{authors: authors, books: books}
}

func (h *AuthorHandler) Create(c echo.Context) error {
	var author domain.Author
	if err := bindJSON(c, &author); err != nil {
		return err
	}

	created, err := h.authors.Create(c.Request().Context(), author)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *AuthorHandler) List(c echo.Context) error {
	authors, err := h.authors.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authors)
}

func (h *AuthorHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	author, err := h.authors.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, author)
}

func (h *AuthorHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var author domain.Author
	if err := bindJSON(c, &author); err != nil {
		return err
	}

	updated, err := h.authors.Update(c.Request().Context(), id, author)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *AuthorHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.authors.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthorHandler) ListBooks(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	books, err := h.books.ListByAuthor(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, books)
}
