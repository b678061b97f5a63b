// Package models defines the core domain models for the kiosk.
//
// # Entities
//
//   - Product: an item on sale, owned by the catalog
//   - Category: a display grouping for products, deduplicated by key
//   - CartItem: a product plus quantity inside the in-progress cart
//   - Order: an immutable record of one paid checkout
//   - OrderLine: a denormalized snapshot of a cart item at payment time
//   - DaySession: the open/closed trading-day boundaries and its orders
//
// # Design Principles
//
// 1. **Money is integral**: all amounts are Money (céntimos). Repeated
// additions over a trading day must not drift, so there is no floating
// point anywhere in the domain.
//
// 2. **Orders copy by value**: OrderLine duplicates the product fields it
// needs. Editing or deleting a product later never alters an order that
// already happened.
//
// 3. **Identity is a string**: Product.ID and Order.ID are opaque strings
// (UUIDs in practice), Category is identified by its normalized key.
package models
