// Package store holds all bookstore state in process memory. It is the
// only owner of the entity maps and ID counters; services read and write
// exclusively through View/Update transactions.
package store

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/saga-books/saga/internal/domain"
)

// Store is the in-memory repository for books, authors, customers, carts
// and per-customer order history.
//
// All access goes through View (shared lock) or Update (exclusive lock),
// so every service operation observes and mutates a consistent snapshot.
// ID counters are atomic and monotonically increasing per entity type,
// starting at 1.
type Store struct {
	mu sync.RWMutex

	bookSeq     atomic.Int64
	authorSeq   atomic.Int64
	customerSeq atomic.Int64
	orderSeq    atomic.Int64

	books     map[int64]domain.Book
	authors   map[int64]domain.Author
	customers map[int64]domain.Customer
	carts     map[int64]domain.Cart
	orders    map[int64][]domain.Order
}

// New returns an empty store.
func New() *Store {
	return &Store{
		books:     make(map[int64]domain.Book),
		authors:   make(map[int64]domain.Author),
		customers: make(map[int64]domain.Customer),
		carts:     make(map[int64]domain.Cart),
		orders:    make(map[int64][]domain.Order),
	}
}

// View runs fn under the shared lock. fn must not call mutating Tx
// methods.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

// Update runs fn under the exclusive lock. If fn returns an error the
// caller sees it unchanged; fn is expected to perform all validation
// before its first mutation so a failed transaction leaves no partial
// writes behind.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

// Tx is a handle to store state, valid only for the duration of the
// View/Update callback that produced it. Getters return copies; callers
// persist changes with the Put/Append methods.
type Tx struct {
	s *Store
}

// NextBookID allocates the next book ID.
func (tx *Tx) NextBookID() int64 { return tx.s.bookSeq.Add(1) }

// NextAuthorID allocates the next author ID.
func (tx *Tx) NextAuthorID() int64 { return tx.s.authorSeq.Add(1) }

// NextCustomerID allocates the next customer ID.
func (tx *Tx) NextCustomerID() int64 { return tx.s.customerSeq.Add(1) }

// NextOrderID allocates the next order ID.
func (tx *Tx) NextOrderID() int64 { return tx.s.orderSeq.Add(1) }

// Book returns the book with the given ID.
func (tx *Tx) Book(id int64) (domain.Book, bool) {
	b, ok := tx.s.books[id]
	return b, ok
}

// Books returns all books ordered by ID.
func (tx *Tx) Books() []domain.Book {
	out := make([]domain.Book, 0, len(tx.s.books))
	for _, b := range tx.s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PutBook inserts or replaces a book.
func (tx *Tx) PutBook(b domain.Book) {
	tx.s.books[b.ID] = b
}

// DeleteBook removes a book.
func (tx *Tx) DeleteBook(id int64) {
	delete(tx.s.books, id)
}

// Author returns the author with the given ID.
func (tx *Tx) Author(id int64) (domain.Author, bool) {
	a, ok := tx.s.authors[id]
	return a, ok
}

// Authors returns all authors ordered by ID.
func (tx *Tx) Authors() []domain.Author {
	out := make([]domain.Author, 0, len(tx.s.authors))
	for _, a := range tx.s.authors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PutAuthor inserts or replaces an author.
func (tx *Tx) PutAuthor(a domain.Author) {
	tx.s.authors[a.ID] = a
}

// DeleteAuthor removes an author.
func (tx *Tx) DeleteAuthor(id int64) {
	delete(tx.s.authors, id)
}

// Customer returns the customer with the given ID.
func (tx *Tx) Customer(id int64) (domain.Customer, bool) {
	c, ok := tx.s.customers[id]
	return c, ok
}

// Customers returns all customers ordered by ID.
func (tx *Tx) Customers() []domain.Customer {
	out := make([]domain.Customer, 0, len(tx.s.customers))
	for _, c := range tx.s.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PutCustomer inserts or replaces a customer.
func (tx *Tx) PutCustomer(c domain.Customer) {
	tx.s.customers[c.ID] = c
}

// DeleteCustomer removes a customer together with their cart and order
// history. The three maps are keyed by customer ID and live or die as a
// unit.
func (tx *Tx) DeleteCustomer(id int64) {
	delete(tx.s.customers, id)
	delete(tx.s.carts, id)
	delete(tx.s.orders, id)
}

// Cart returns a copy of the customer's cart.
func (tx *Tx) Cart(customerID int64) (domain.Cart, bool) {
	c, ok := tx.s.carts[customerID]
	if !ok {
		return domain.Cart{}, false
	}
	return copyCart(c), true
}

// PutCart inserts or replaces the customer's cart.
func (tx *Tx) PutCart(c domain.Cart) {
	tx.s.carts[c.CustomerID] = copyCart(c)
}

// Orders returns a copy of the customer's order history in insertion
// order. The second return reports whether a history entry exists at all.
func (tx *Tx) Orders(customerID int64) ([]domain.Order, bool) {
	orders, ok := tx.s.orders[customerID]
	if !ok {
		return nil, false
	}
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		out[i] = copyOrder(o)
	}
	return out, true
}

// InitOrders creates an empty order history for the customer if none
// exists.
func (tx *Tx) InitOrders(customerID int64) {
	if _, ok := tx.s.orders[customerID]; !ok {
		tx.s.orders[customerID] = []domain.Order{}
	}
}

// AppendOrder appends an order to its customer's history.
func (tx *Tx) AppendOrder(o domain.Order) {
	tx.s.orders[o.CustomerID] = append(tx.s.orders[o.CustomerID], copyOrder(o))
}

func copyCart(c domain.Cart) domain.Cart {
	items := make([]domain.CartItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}

func copyOrder(o domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
