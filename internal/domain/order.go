package domain

import "time"

// Order is an immutable record created from a cart snapshot at checkout.
// TotalAmount is the sum of each item's TotalPrice.
type Order struct {
	ID          int64       `json:"id"`
	CustomerID  int64       `json:"customerId"`
	Items       []OrderItem `json:"items"`
	OrderDate   time.Time   `json:"orderDate"`
	TotalAmount float64     `json:"totalAmount"`
}

// OrderItem is one line of an order. BookTitle and Price are snapshots
// taken at checkout and stay fixed if the book changes later.
type OrderItem struct {
	BookID     int64   `json:"bookId"`
	BookTitle  string  `json:"bookTitle"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}
