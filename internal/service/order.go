package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/events"
	"github.com/saga-books/saga/internal/store"
)

// OrderService converts carts into orders and exposes per-customer order
// history.
type OrderService interface {
	// Checkout creates an order from the customer's cart: it validates
	// every line against current stock, snapshots title and unit price,
	// decrements stock, appends the order to the customer's history and
	// empties the cart. The whole sequence runs in one store transaction.
	Checkout(ctx context.Context, customerID int64) (*domain.Order, error)

	ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	GetForCustomer(ctx context.Context, customerID, orderID int64) (*domain.Order, error)
}

type orderService struct {
	store  *store.Store
	events events.Publisher
	logger zerolog.Logger
}

// NewOrderService creates an OrderService backed by the given store.
// Completed orders are announced through the publisher.
func NewOrderService(st *store.Store, pub events.Publisher, logger zerolog.Logger) OrderService {
	return &orderService{store: st, events: pub, logger: logger}
}

func (s *orderService) Checkout(ctx context.Context, customerID int64) (*domain.Order, error) {
	const op = "order.checkout"

	var order domain.Order
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Customer(customerID); !ok {
			return domain.NotFound(op, "Customer", customerID)
		}

		cart := cartOrCreate(tx, customerID)
		if len(cart.Items) == 0 {
			return domain.Invalid(op, "Cannot create an order with an empty cart.")
		}

		// Validate every line before touching stock, so a failure on any
		// line leaves the store exactly as it was.
		items := make([]domain.OrderItem, 0, len(cart.Items))
		var total float64
		for _, line := range cart.Items {
			book, ok := tx.Book(line.BookID)
			if !ok {
				return domain.NotFound(op, "Book", line.BookID)
			}
			if book.Stock < line.Quantity {
				return domain.OutOfStock(op, book.ID, line.Quantity, book.Stock)
			}

			item := domain.OrderItem{
				BookID:     book.ID,
				BookTitle:  book.Title,
				Quantity:   line.Quantity,
				Price:      book.Price,
				TotalPrice: book.Price * float64(line.Quantity),
			}
			items = append(items, item)
			total += item.TotalPrice
		}

		// Commit: decrement stock, record the order, empty the cart.
		for _, line := range cart.Items {
			book, _ := tx.Book(line.BookID)
			book.Stock -= line.Quantity
			tx.PutBook(book)
		}

		order = domain.Order{
			ID:          tx.NextOrderID(),
			CustomerID:  customerID,
			Items:       items,
			OrderDate:   time.Now().UTC(),
			TotalAmount: total,
		}
		tx.AppendOrder(order)

		cart.Clear()
		tx.PutCart(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, events.SubjectOrderCreated, order); err != nil {
		s.logger.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to publish order event")
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("customer_id", customerID).
		Int("items", len(order.Items)).
		Float64("total", order.TotalAmount).
		Msg("order created")

	return &order, nil
}

func (s *orderService) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	const op = "order.list"

	var orders []domain.Order
	err := s.store.View(func(tx *store.Tx) error {
		if _, ok := tx.Customer(customerID); !ok {
			return domain.NotFound(op, "Customer", customerID)
		}
		found, ok := tx.Orders(customerID)
		if !ok {
			found = []domain.Order{}
		}
		orders = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// GetForCustomer scans the customer's history in insertion order and
// returns the first order matching orderID. An order belonging to a
// different customer is not visible here.
func (s *orderService) GetForCustomer(ctx context.Context, customerID, orderID int64) (*domain.Order, error) {
	const op = "order.get"

	var order domain.Order
	err := s.store.View(func(tx *store.Tx) error {
		if _, ok := tx.Customer(customerID); !ok {
			return domain.NotFound(op, "Customer", customerID)
		}
		orders, _ := tx.Orders(customerID)
		for _, o := range orders {
			if o.ID == orderID {
				order = o
				return nil
			}
		}
		return domain.Errorf(domain.ENOTFOUND, op, "Order with ID %d does not exist.", orderID)
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
