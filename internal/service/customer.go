package service

import (
	"context"

	"github.com/saga-books/saga/internal/auth"
	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/store"
)

// CustomerParams carries the writable customer fields. The password is
// accepted in plain text and stored only as a bcrypt hash.
type CustomerParams struct {
	Name     string `validate:"notblank"`
	Email    string `validate:"notblank"`
	Password string `validate:"notblank"`
}

// CustomerService provides account operations. Creating a customer also
// creates their (empty) cart and order history; deleting a customer
// removes all three together.
type CustomerService interface {
	Create(ctx context.Context, params CustomerParams) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, params CustomerParams) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	store *store.Store
}

// NewCustomerService creates a CustomerService backed by the given store.
func NewCustomerService(st *store.Store) CustomerService {
	return &customerService{store: st}
}

var customerMessages = map[string]string{
	"Name":     "Customer name cannot be empty.",
	"Email":    "Customer email cannot be empty.",
	"Password": "Customer password cannot be empty.",
}

func (s *customerService) Create(ctx context.Context, params CustomerParams) (*domain.Customer, error) {
	const op = "customer.create"

	if err := checkStruct(op, params, customerMessages); err != nil {
		return nil, err
	}

	// Hash outside the store lock; bcrypt is deliberately slow.
	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to hash password")
	}

	var customer domain.Customer
	err = s.store.Update(func(tx *store.Tx) error {
		for _, c := range tx.Customers() {
			if c.Email == params.Email {
				return domain.Invalid(op, "Email address is already in use.")
			}
		}

		customer = domain.Customer{
			ID:           tx.NextCustomerID(),
			Name:         params.Name,
			Email:        params.Email,
			PasswordHash: hash,
		}
		tx.PutCustomer(customer)

		// A customer never exists without a cart and an order history.
		tx.PutCart(domain.NewCart(customer.ID))
		tx.InitOrders(customer.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (s *customerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	const op = "customer.get"

	var customer domain.Customer
	err := s.store.View(func(tx *store.Tx) error {
		c, ok := tx.Customer(id)
		if !ok {
			return domain.NotFound(op, "Customer", id)
		}
		customer = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := s.store.View(func(tx *store.Tx) error {
		customers = tx.Customers()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return customers, nil
}

// Update replaces name, email and password. The email must remain unique
// across all other customers; keeping the current email is allowed.
func (s *customerService) Update(ctx context.Context, id int64, params CustomerParams) (*domain.Customer, error) {
	const op = "customer.update"

	// Existence is reported before any validation failure, then
	// re-checked under the write lock.
	if _, err := s.Get(ctx, id); err != nil {
		return nil, domain.NotFound(op, "Customer", id)
	}

	if err := checkStruct(op, params, customerMessages); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to hash password")
	}

	var customer domain.Customer
	err = s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Customer(id); !ok {
			return domain.NotFound(op, "Customer", id)
		}
		for _, c := range tx.Customers() {
			if c.Email == params.Email && c.ID != id {
				return domain.Invalid(op, "Email address is already in use by another customer.")
			}
		}

		customer = domain.Customer{
			ID:           id,
			Name:         params.Name,
			Email:        params.Email,
			PasswordHash: hash,
		}
		tx.PutCustomer(customer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	const op = "customer.delete"

	return s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Customer(id); !ok {
			return domain.NotFound(op, "Customer", id)
		}
		tx.DeleteCustomer(id)
		return nil
	})
}
