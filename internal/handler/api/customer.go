package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saga-books/saga/internal/service"
)

// CustomerHandler serves the /customers resource.
type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// customerRequest is the write payload. Passwords come in here and never
// go back out; responses carry the stored customer without it.
type customerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r customerRequest) params() service.CustomerParams {
	return service.CustomerParams{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	created, err := h.customers.Create(c.Request().Context(), req.params())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customers.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.customers.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req customerRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	updated, err := h.customers.Update(c.Request().Context(), id, req.params())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.customers.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
