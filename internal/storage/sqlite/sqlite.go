// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/pmdelgado/kiosco/internal/models"
	"github.com/pmdelgado/kiosco/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetProducts returns every product in the catalog, sorted by name.
func (s *SQLiteStore) GetProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price_cents, category, image_kind, image_value FROM products ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var kind string
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &kind, &p.Image.Value); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Image.Kind = models.ImageKind(kind)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// SetProducts replaces the entire product collection in one transaction.
func (s *SQLiteStore) SetProducts(ctx context.Context, products []models.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	for _, p := range products {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO products (id, name, price_cents, category, image_kind, image_value) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, p.Name, p.Price, p.Category, string(p.Image.Kind), p.Image.Value,
		); err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpsertProduct inserts or replaces one product by id.
func (s *SQLiteStore) UpsertProduct(ctx context.Context, p models.Product) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO products (id, name, price_cents, category, image_kind, image_value) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID, p.Name, p.Price, p.Category, string(p.Image.Kind), p.Image.Value,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product by id. Deleting an absent id is not an error.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// GetCategories returns every category, sorted by display name.
func (s *SQLiteStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, name FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Key, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// UpsertCategory inserts or replaces one category by key.
func (s *SQLiteStore) UpsertCategory(ctx context.Context, c models.Category) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO categories (key, name) VALUES (?, ?)",
		c.Key, c.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category by key. Deleting an absent key is not an error.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// GetOrders returns the session's orders with their lines, oldest first.
func (s *SQLiteStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, total_cents, paid_at FROM orders ORDER BY paid_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var paidAt string
		if err := rows.Scan(&o.ID, &o.Total, &paidAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.PaidAt, err = time.Parse(time.RFC3339Nano, paidAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse paid_at: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	for i := range orders {
		lines, err := s.getOrderLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

func (s *SQLiteStore) getOrderLines(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT product_id, name, category, unit_price_cents, quantity, subtotal_cents FROM order_lines WHERE order_id = ? ORDER BY pos",
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order lines: %w", err)
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Category, &l.UnitPrice, &l.Quantity, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}
	return lines, nil
}

// AddOrder persists an order and its lines in one transaction.
func (s *SQLiteStore) AddOrder(ctx context.Context, o models.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO orders (id, total_cents, paid_at) VALUES (?, ?, ?)",
		o.ID, o.Total, o.PaidAt.Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for pos, l := range o.Lines {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_lines (order_id, pos, product_id, name, category, unit_price_cents, quantity, subtotal_cents) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			o.ID, pos, l.ProductID, l.Name, l.Category, l.UnitPrice, l.Quantity, l.Subtotal,
		); err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ClearOrders deletes every order; lines go with them via the foreign key.
func (s *SQLiteStore) ClearOrders(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM orders"); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}
	return nil
}

// GetDay returns the stored mark, or the zero time when it is not set.
func (s *SQLiteStore) GetDay(ctx context.Context, which storage.DayMark) (time.Time, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM day WHERE key = ?", string(which)).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get day mark: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse day mark: %w", err)
	}
	return t, nil
}

// SetDay stores one day mark.
func (s *SQLiteStore) SetDay(ctx context.Context, which storage.DayMark, t time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO day (key, value) VALUES (?, ?)",
		string(which), t.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to set day mark: %w", err)
	}
	return nil
}

// ClearDay removes both day marks.
func (s *SQLiteStore) ClearDay(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM day"); err != nil {
		return fmt.Errorf("failed to clear day: %w", err)
	}
	return nil
}

// GetSetting returns the stored value, or "" when the key is absent.
func (s *SQLiteStore) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores one opaque setting value.
func (s *SQLiteStore) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}
	return nil
}
