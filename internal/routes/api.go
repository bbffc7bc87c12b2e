// Package routes maps URLs to handlers. Route registration is kept
// separate from handler construction so the full surface is visible in
// one place.
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/saga-books/saga/internal/handler/api"
)

// APIDeps carries the constructed handlers for route registration.
type APIDeps struct {
	Books     *api.BookHandler
	Authors   *api.AuthorHandler
	Customers *api.CustomerHandler
	Carts     *api.CartHandler
	Orders    *api.OrderHandler
}

// RegisterAPIRoutes attaches every resource route to the server.
func RegisterAPIRoutes(e *echo.Echo, deps APIDeps) {
	// Books
	e.POST("/books", deps.Books.Create)
	e.GET("/books", deps.Books.List)
	e.GET("/books/:id", deps.Books.Get)
	e.PUT("/books/:id", deps.Books.Update)
	e.DELETE("/books/:id", deps.Books.Delete)

	// Authors
	e.POST("/authors", deps.Authors.Create)
	e.GET("/authors", deps.Authors.List)
	e.GET("/authors/:id", deps.Authors.Get)
	e.PUT("/authors/:id", deps.Authors.Update)
	e.DELETE("/authors/:id", deps.Authors.Delete)
	e.GET("/authors/:id/books", deps.Authors.ListBooks)

	// Customers
	e.POST("/customers", deps.Customers.Create)
	e.GET("/customers", deps.Customers.List)
	e.GET("/customers/:id", deps.Customers.Get)
	e.PUT("/customers/:id", deps.Customers.Update)
	e.DELETE("/customers/:id", deps.Customers.Delete)

	// Carts
	e.GET("/customers/:customerId/cart", deps.Carts.Get)
	e.POST("/customers/:customerId/cart/items", deps.Carts.AddItem)
	e.PUT("/customers/:customerId/cart/items/:bookId", deps.Carts.UpdateItem)
	e.DELETE("/customers/:customerId/cart/items/:bookId", deps.Carts.RemoveItem)

	// Orders
	e.POST("/customers/:customerId/orders", deps.Orders.Create)
	e.GET("/customers/:customerId/orders", deps.Orders.List)
	e.GET("/customers/:customerId/orders/:orderId", deps.Orders.Get)
}
