package models

import "time"

// OrderLine is a denormalized snapshot of a cart item at the moment payment
// was confirmed. It copies the product fields by value so later edits or
// deletes of the product cannot alter a historical order.
type OrderLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice Money  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`

	// Subtotal is UnitPrice × Quantity, fixed at confirmation time.
	Subtotal Money `json:"subtotal"`
}

// Order is an immutable record of one paid checkout.
//
// Created exactly once per successful confirmation, never mutated, and
// deleted only by the bulk clear that starts a new day or closes the app.
type Order struct {
	// ID is the unique identifier for the order (UUID format).
	ID string `json:"id"`

	// Total is the sum of the line subtotals. Always positive.
	Total Money `json:"total"`

	// PaidAt is when payment was confirmed.
	PaidAt time.Time `json:"paidAt"`

	Lines []OrderLine `json:"lines"`
}
