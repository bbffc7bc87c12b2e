package domain

// Customer is an account that owns a cart and an order history. Both are
// created with the customer and removed with it.
//
// PasswordHash holds the bcrypt hash of the customer's password. It is
// never serialized.
type Customer struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
