package models

// Order represents an order created from a cart
type Order struct {
	ID string `json:"id"`
}
