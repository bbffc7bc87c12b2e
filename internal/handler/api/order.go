package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saga-books/saga/internal/service"
)

// OrderHandler serves a customer's orders under
// /customers/:customerId/orders.
type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create checks out the customer's cart into a new order.
func (h *OrderHandler) Create(c echo.Context) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}

	order, err := h.orders.Checkout(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}

	orders, err := h.orders.ListForCustomer(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}
	orderID, err := paramID(c, "orderId")
	if err != nil {
		return err
	}

	order, err := h.orders.GetForCustomer(c.Request().Context(), customerID, orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
