package models

// CartItem is one line of the in-progress cart.
//
// Quantity is always >= 1; cart operations drop an item instead of keeping
// it at zero. A cart holds at most one CartItem per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
