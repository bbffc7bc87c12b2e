package service

import (
	"context"
	"fmt"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/store"
)

// CartService provides business logic for shopping cart operations.
type CartService interface {
	Get(ctx context.Context, customerID int64) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID int64, item domain.CartItem) (*domain.Cart, error)
	UpdateItem(ctx context.Context, customerID, bookID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, customerID, bookID int64) (*domain.Cart, error)
}

type cartService struct {
	store *store.Store
}

// NewCartService creates a CartService backed by the given store.
func NewCartService(st *store.Store) CartService {
	return &cartService{store: st}
}

// cartOrCreate resolves the customer's cart. Customer creation always
// installs a cart, so the create branch is a defensive fallback only.
func cartOrCreate(tx *store.Tx, customerID int64) domain.Cart {
	cart, ok := tx.Cart(customerID)
	if !ok {
		cart = domain.NewCart(customerID)
		tx.PutCart(cart)
	}
	return cart
}

func (s *cartService) Get(ctx context.Context, customerID int64) (*domain.Cart, error) {
	const op = "cart.get"

	var cart domain.Cart
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Customer(customerID); !ok {
			return domain.NotFound(op, "Customer", customerID)
		}
		cart = cartOrCreate(tx, customerID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

// AddItem puts a book into the cart, merging quantities when a line for
// the same book already exists.
//
// The stock check covers the requested increment against current stock
// only; the merged line quantity is not re-validated, so repeated adds
// can leave a line above available stock. Checkout performs the
// authoritative stock check.
func (s *cartService) AddItem(ctx context.Context, customerID int64, item domain.CartItem) (*domain.Cart, error) {
	const op = "cart.add_item"

	var cart domain.Cart
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Customer(customerID); !ok {
			return domain.NotFound(op, "Customer", customerID)
		}
		book, ok := tx.Book(item.BookID)
		if !ok {
			return domain.NotFound(op, "Book", item.BookID)
		}
		if book.Stock < item.Quantity {
			return domain.OutOfStock(op, book.ID, item.Quantity, book.Stock)
		}

		cart = cartOrCreate(tx, customerID)
		cart.AddItem(item)
		tx.PutCart(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

// UpdateItem replaces the quantity of an existing cart line.
func (s *cartService) UpdateItem(ctx context.Context, customerID, bookID int64, quantity int) (*domain.Cart, error) {
	const op = "cart.update_item"

	var cart domain.Cart
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Customer(customerID); !ok {
			return domain.NotFound(op, "Customer", customerID)
		}
		book, ok := tx.Book(bookID)
		if !ok {
			return domain.NotFound(op, "Book", bookID)
		}
		if quantity <= 0 {
			return domain.Invalid(op, "Quantity must be greater than zero.")
		}
		if book.Stock < quantity {
			return domain.OutOfStock(op, book.ID, quantity, book.Stock)
		}

		cart = cartOrCreate(tx, customerID)
		if cart.Item(bookID) == nil {
			return domain.Invalid(op, fmt.Sprintf("Book with ID %d not found in cart.", bookID))
		}
		cart.UpdateItem(bookID, quantity)
		tx.PutCart(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

// RemoveItem deletes a cart line. Removing a book that is not in the
// cart is a silent no-op.
func (s *cartService) RemoveItem(ctx context.Context, customerID, bookID int64) (*domain.Cart, error) {
	const op = "cart.remove_item"

	var cart domain.Cart
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Customer(customerID); !ok {
			return domain.NotFound(op, "Customer", customerID)
		}
		cart = cartOrCreate(tx, customerID)
		cart.RemoveItem(bookID)
		tx.PutCart(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}
