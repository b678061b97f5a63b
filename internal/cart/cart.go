// Package cart implements the pure arithmetic over the in-progress cart.
//
// Every function returns a new cart value and leaves its input untouched, so
// the engine can hold the previous cart across a failed persist. The total
// computed here is the same sum the order lines carry after confirmation;
// that equality is the invariant bridging cart and order.
package cart

import "github.com/pmdelgado/kiosco/internal/models"

// Cart is an ordered sequence of items, unique by product id.
type Cart []models.CartItem

// Add increments the quantity of the product if it is already in the cart
// (keeping its position) or appends it with quantity 1.
func Add(c Cart, p models.Product) Cart {
	next := make(Cart, len(c))
	copy(next, c)
	for i := range next {
		if next[i].Product.ID == p.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, models.CartItem{Product: p, Quantity: 1})
}

// Remove decrements the quantity of the matching product, dropping the item
// when it reaches zero. Removing an absent product returns the cart
// unchanged in content.
func Remove(c Cart, productID string) Cart {
	next := make(Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID == productID {
			item.Quantity--
			if item.Quantity <= 0 {
				continue
			}
		}
		next = append(next, item)
	}
	return next
}

// Drop removes the product entirely regardless of quantity. Used when a
// product is deleted from the catalog while sitting in the cart.
func Drop(c Cart, productID string) Cart {
	next := make(Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// Clear returns the empty cart.
func Clear() Cart {
	return Cart{}
}

// TotalOf sums price × quantity over all items.
func TotalOf(c Cart) models.Money {
	var sum models.Money
	for _, item := range c {
		sum += item.Product.Price * models.Money(item.Quantity)
	}
	return sum
}

// Lines snapshots every cart item into an order line, copying the product
// fields by value and fixing each subtotal at the current unit price.
func Lines(c Cart) []models.OrderLine {
	lines := make([]models.OrderLine, len(c))
	for i, item := range c {
		lines[i] = models.OrderLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Category:  item.Product.Category,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Product.Price * models.Money(item.Quantity),
		}
	}
	return lines
}
