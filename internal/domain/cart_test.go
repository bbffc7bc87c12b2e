package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddItemMergesSameBook(t *testing.T) {
	cart := NewCart(1)

	cart.AddItem(CartItem{BookID: 10, Quantity: 2})
	cart.AddItem(CartItem{BookID: 11, Quantity: 1})
	cart.AddItem(CartItem{BookID: 10, Quantity: 3})

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, CartItem{BookID: 10, Quantity: 5}, cart.Items[0])
	assert.Equal(t, CartItem{BookID: 11, Quantity: 1}, cart.Items[1])
}

func TestCart_UpdateItemReplacesQuantity(t *testing.T) {
	cart := NewCart(1)
	cart.AddItem(CartItem{BookID: 10, Quantity: 2})

	cart.UpdateItem(10, 7)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	// Unknown book is a no-op.
	cart.UpdateItem(99, 1)
	assert.Len(t, cart.Items, 1)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart(1)
	cart.AddItem(CartItem{BookID: 10, Quantity: 2})
	cart.AddItem(CartItem{BookID: 11, Quantity: 1})

	cart.RemoveItem(10)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(11), cart.Items[0].BookID)

	// Removing an absent book is a silent no-op.
	cart.RemoveItem(10)
	assert.Len(t, cart.Items, 1)
}

func TestCart_ClearKeepsItemsNonNil(t *testing.T) {
	cart := NewCart(1)
	cart.AddItem(CartItem{BookID: 10, Quantity: 2})

	cart.Clear()
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}
