// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/pmdelgado/kiosco/internal/models"
)

// DayMark names the two timestamps of a day session.
type DayMark string

const (
	DayStart DayMark = "start"
	DayEnd   DayMark = "end"
)

// Store is the persistence port the engine runs against. It is a plain
// key-value contract so backends (SQLite, in-memory, ...) can be swapped
// without changing the engine.
//
// The engine awaits every call before issuing the next mutating one; a
// Store implementation does not need to serialize callers itself beyond
// ordinary safety.
type Store interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	// SetProducts replaces the whole product collection. Used for catalog
	// seeding.
	SetProducts(ctx context.Context, products []models.Product) error
	UpsertProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	GetCategories(ctx context.Context) ([]models.Category, error)
	UpsertCategory(ctx context.Context, c models.Category) error
	DeleteCategory(ctx context.Context, key string) error

	GetOrders(ctx context.Context) ([]models.Order, error)
	AddOrder(ctx context.Context, o models.Order) error
	ClearOrders(ctx context.Context) error

	// GetDay returns the zero time when the mark has not been set.
	GetDay(ctx context.Context, which DayMark) (time.Time, error)
	SetDay(ctx context.Context, which DayMark, t time.Time) error
	// ClearDay removes both marks.
	ClearDay(ctx context.Context) error

	// GetSetting returns "" when the key is absent. Settings are opaque
	// strings; the engine uses them for the payment QR reference.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// Close releases any resources held by the store.
	Close() error
}
