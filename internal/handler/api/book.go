package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/service"
)

// BookHandler serves the /books resource.
type BookHandler struct {
	books service.BookService
}

func NewBookHandler(books service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) Create(c echo.Context) error {
	var book domain.Book
	if err := bindJSON(c, &book); err != nil {
		return err
	}

	created, err := h.books.Create(c.Request().Context(), book)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *BookHandler) List(c echo.Context) error {
	books, err := h.books.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, books)
}

func (h *BookHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	book, err := h.books.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var book domain.Book
	if err := bindJSON(c, &book); err != nil {
		return err
	}

	updated, err := h.books.Update(c.Request().Context(), id, book)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *BookHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.books.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
