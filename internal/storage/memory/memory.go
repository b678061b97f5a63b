// Package memory provides an in-memory implementation of storage.Store.
//
// It backs tests and ephemeral runs (STORE=memory). A single RWMutex is
// enough: the engine issues one mutating call at a time.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pmdelgado/kiosco/internal/models"
	"github.com/pmdelgado/kiosco/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore keeps every collection in maps guarded by one lock.
type MemoryStore struct {
	mu         sync.RWMutex
	products   map[string]models.Product
	categories map[string]models.Category
	orders     []models.Order
	day        map[storage.DayMark]time.Time
	settings   map[string]string
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		products:   make(map[string]models.Product),
		categories: make(map[string]models.Category),
		day:        make(map[storage.DayMark]time.Time),
		settings:   make(map[string]string),
	}
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }

// GetProducts returns the catalog sorted by name, matching the SQLite store.
func (m *MemoryStore) GetProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (m *MemoryStore) SetProducts(ctx context.Context, products []models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = make(map[string]models.Product, len(products))
	for _, p := range products {
		m.products[p.ID] = p
	}
	return nil
}

func (m *MemoryStore) UpsertProduct(ctx context.Context, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *MemoryStore) DeleteProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

// GetCategories returns categories sorted by display name.
func (m *MemoryStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	categories := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *MemoryStore) UpsertCategory(ctx context.Context, c models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[c.Key] = c
	return nil
}

func (m *MemoryStore) DeleteCategory(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, key)
	return nil
}

// GetOrders returns the session's orders oldest first.
func (m *MemoryStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]models.Order, len(m.orders))
	for i, o := range m.orders {
		lines := make([]models.OrderLine, len(o.Lines))
		copy(lines, o.Lines)
		o.Lines = lines
		orders[i] = o
	}
	return orders, nil
}

func (m *MemoryStore) AddOrder(ctx context.Context, o models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := make([]models.OrderLine, len(o.Lines))
	copy(lines, o.Lines)
	o.Lines = lines
	m.orders = append(m.orders, o)
	return nil
}

func (m *MemoryStore) ClearOrders(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = nil
	return nil
}

func (m *MemoryStore) GetDay(ctx context.Context, which storage.DayMark) (time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.day[which], nil
}

func (m *MemoryStore) SetDay(ctx context.Context, which storage.DayMark, t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.day[which] = t
	return nil
}

func (m *MemoryStore) ClearDay(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.day = make(map[storage.DayMark]time.Time)
	return nil
}

func (m *MemoryStore) GetSetting(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings[key], nil
}

func (m *MemoryStore) SetSetting(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}
