package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/service"
)

// CartHandler serves a customer's cart under /customers/:customerId/cart.
type CartHandler struct {
	carts service.CartService
}

func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Get(c echo.Context) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}

	cart, err := h.carts.Get(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}

	var item domain.CartItem
	if err := bindJSON(c, &item); err != nil {
		return err
	}

	cart, err := h.carts.AddItem(c.Request().Context(), customerID, item)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}

// UpdateItem takes the book from the path and the quantity from the
// body; any bookId in the body is ignored.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}
	bookID, err := paramID(c, "bookId")
	if err != nil {
		return err
	}

	var item domain.CartItem
	if err := bindJSON(c, &item); err != nil {
		return err
	}

	cart, err := h.carts.UpdateItem(c.Request().Context(), customerID, bookID, item.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}
	bookID, err := paramID(c, "bookId")
	if err != nil {
		return err
	}

	cart, err := h.carts.RemoveItem(c.Request().Context(), customerID, bookID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}
