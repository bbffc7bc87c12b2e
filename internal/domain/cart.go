package domain

// Cart holds a customer's pending line items. There is exactly one cart
// per customer and at most one line per book; adding an existing book
// merges quantities.
type Cart struct {
	CustomerID int64      `json:"customerId"`
	Items      []CartItem `json:"items"`
}

// CartItem is a (book, quantity) line within a cart.
type CartItem struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// NewCart returns an empty cart for the customer. Items is non-nil so the
// cart serializes as an empty JSON array rather than null.
func NewCart(customerID int64) Cart {
	return Cart{CustomerID: customerID, Items: []CartItem{}}
}

// Item returns a pointer to the line for bookID, or nil if absent.
func (c *Cart) Item(bookID int64) *CartItem {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem merges the quantity into an existing line for the same book, or
// appends a new line.
func (c *Cart) AddItem(item CartItem) {
	if existing := c.Item(item.BookID); existing != nil {
		existing.Quantity += item.Quantity
		return
	}
	c.Items = append(c.Items, item)
}

// UpdateItem replaces the quantity of the line for bookID, if present.
func (c *Cart) UpdateItem(bookID int64, quantity int) {
	if item := c.Item(bookID); item != nil {
		item.Quantity = quantity
	}
}

// RemoveItem deletes the line for bookID. Removing an absent book is a
// no-op.
func (c *Cart) RemoveItem(bookID int64) {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the item list.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}
