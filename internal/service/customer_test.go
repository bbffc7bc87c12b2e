package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saga-books/saga/internal/auth"
	"github.com/saga-books/saga/internal/domain"
	"github.com/saga-books/saga/internal/store"
)

func validCustomer() CustomerParams {
	return CustomerParams{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Password: "password123",
	}
}

func TestCustomerCreate(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	svc := NewCustomerService(st)

	created, err := svc.Create(ctx, validCustomer())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "John Doe", created.Name)

	// Password is stored hashed, never in plain text.
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, auth.VerifyPassword("password123", created.PasswordHash))
	assert.Error(t, auth.VerifyPassword("wrong", created.PasswordHash))

	// Creation installs an empty cart and an empty order history.
	require.NoError(t, st.View(func(tx *store.Tx) error {
		cart, ok := tx.Cart(created.ID)
		require.True(t, ok)
		assert.Empty(t, cart.Items)

		orders, ok := tx.Orders(created.ID)
		require.True(t, ok)
		assert.Empty(t, orders)
		return nil
	}))
}

func TestCustomerCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(store.New())

	tests := []struct {
		name    string
		mutate  func(*CustomerParams)
		message string
	}{
		{"blank name", func(p *CustomerParams) { p.Name = "  " }, "Customer name cannot be empty."},
		{"empty email", func(p *CustomerParams) { p.Email = "" }, "Customer email cannot be empty."},
		{"empty password", func(p *CustomerParams) { p.Password = "" }, "Customer password cannot be empty."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validCustomer()
			tt.mutate(&params)

			_, err := svc.Create(ctx, params)
			require.Error(t, err)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
			assert.Equal(t, tt.message, domain.ErrorMessage(err))
		})
	}
}

func TestCustomerCreate_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(store.New())

	_, err := svc.Create(ctx, validCustomer())
	require.NoError(t, err)

	params := validCustomer()
	params.Name = "Someone Else"
	_, err = svc.Create(ctx, params)
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Equal(t, "Email address is already in use.", domain.ErrorMessage(err))

	// The comparison is exact, so a different casing is a different email.
	params.Email = "John.Doe@example.com"
	_, err = svc.Create(ctx, params)
	assert.NoError(t, err)
}

func TestCustomerUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(store.New())

	created, err := svc.Create(ctx, validCustomer())
	require.NoError(t, err)

	params := CustomerParams{Name: "Johnny Doe", Email: "johnny@example.com", Password: "newsecret"}
	updated, err := svc.Update(ctx, created.ID, params)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "johnny@example.com", updated.Email)
	assert.NoError(t, auth.VerifyPassword("newsecret", updated.PasswordHash))
}

func TestCustomerUpdate_KeepingOwnEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(store.New())

	created, err := svc.Create(ctx, validCustomer())
	require.NoError(t, err)

	// Re-submitting the current email is not a conflict.
	_, err = svc.Update(ctx, created.ID, validCustomer())
	assert.NoError(t, err)
}

func TestCustomerUpdate_EmailTakenByOther(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(store.New())

	_, err := svc.Create(ctx, validCustomer())
	require.NoError(t, err)

	other, err := svc.Create(ctx, CustomerParams{Name: "Jane", Email: "jane@example.com", Password: "pw"})
	require.NoError(t, err)

	params := validCustomer() // john.doe@example.com, already taken
	params.Name = "Jane"
	_, err = svc.Update(ctx, other.ID, params)
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Equal(t, "Email address is already in use by another customer.", domain.ErrorMessage(err))
}

func TestCustomerUpdate_NotFoundBeforeValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(store.New())

	// Even with an invalid payload, a missing customer reports not found.
	_, err := svc.Update(ctx, 42, CustomerParams{})
	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	assert.Equal(t, "Customer with ID 42 not found.", domain.ErrorMessage(err))
}

func TestCustomerDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	svc := NewCustomerService(st)

	created, err := svc.Create(ctx, validCustomer())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))

	require.NoError(t, st.View(func(tx *store.Tx) error {
		_, ok := tx.Cart(created.ID)
		assert.False(t, ok)
		_, ok = tx.Orders(created.ID)
		assert.False(t, ok)
		return nil
	}))

	err = svc.Delete(ctx, created.ID)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}
