package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pmdelgado/kiosco/internal/models"
	"github.com/pmdelgado/kiosco/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "kiosco-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreProducts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("empty store has no products", func(t *testing.T) {
		products, err := store.GetProducts(ctx)
		if err != nil {
			t.Fatalf("GetProducts failed: %v", err)
		}
		if len(products) != 0 {
			t.Errorf("expected empty catalog, got %d products", len(products))
		}
	})

	t.Run("SetProducts replaces the collection", func(t *testing.T) {
		seed := []models.Product{
			{ID: "p1", Name: "Baguette", Price: 350, Category: "Pan"},
			{ID: "p2", Name: "Alfajor", Price: 200, Category: "Dulces",
				Image: models.ProductImage{Kind: models.ImageFile, Value: "products/alfajor.jpg"}},
		}
		if err := store.SetProducts(ctx, seed); err != nil {
			t.Fatalf("SetProducts failed: %v", err)
		}

		products, err := store.GetProducts(ctx)
		if err != nil {
			t.Fatalf("GetProducts failed: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("got %d products, want 2", len(products))
		}
		// Sorted by name.
		if products[0].Name != "Alfajor" || products[1].Name != "Baguette" {
			t.Errorf("not sorted by name: %s, %s", products[0].Name, products[1].Name)
		}
		if products[0].Image.Kind != models.ImageFile || products[0].Image.Value != "products/alfajor.jpg" {
			t.Errorf("image variant not round-tripped: %+v", products[0].Image)
		}
		if products[1].Image.Kind != models.ImageNone {
			t.Errorf("missing image should load as ImageNone, got %+v", products[1].Image)
		}
	})

	t.Run("UpsertProduct replaces by id", func(t *testing.T) {
		if err := store.UpsertProduct(ctx, models.Product{ID: "p1", Name: "Baguette", Price: 400, Category: "Pan"}); err != nil {
			t.Fatalf("UpsertProduct failed: %v", err)
		}
		products, _ := store.GetProducts(ctx)
		for _, p := range products {
			if p.ID == "p1" && p.Price != 400 {
				t.Errorf("price not updated: %d", p.Price)
			}
		}
	})

	t.Run("DeleteProduct removes and tolerates absent ids", func(t *testing.T) {
		if err := store.DeleteProduct(ctx, "p2"); err != nil {
			t.Fatalf("DeleteProduct failed: %v", err)
		}
		if err := store.DeleteProduct(ctx, "ghost"); err != nil {
			t.Errorf("deleting an absent id should not error: %v", err)
		}
		products, _ := store.GetProducts(ctx)
		if len(products) != 1 {
			t.Errorf("got %d products, want 1", len(products))
		}
	})
}

func TestSQLiteStoreCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, c := range []models.Category{
		{Key: "pan", Name: "Pan"},
		{Key: "dulces", Name: "Dulces"},
	} {
		if err := store.UpsertCategory(ctx, c); err != nil {
			t.Fatalf("UpsertCategory failed: %v", err)
		}
	}

	categories, err := store.GetCategories(ctx)
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Dulces" {
		t.Errorf("got %+v, want Dulces first", categories)
	}

	if err := store.DeleteCategory(ctx, "dulces"); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	categories, _ = store.GetCategories(ctx)
	if len(categories) != 1 || categories[0].Key != "pan" {
		t.Errorf("got %+v, want only pan", categories)
	}
}

func TestSQLiteStoreOrders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	paidAt := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
	order := models.Order{
		ID:     "o1",
		Total:  1100,
		PaidAt: paidAt,
		Lines: []models.OrderLine{
			{ProductID: "a", Name: "Alfajor", Category: "Dulces", UnitPrice: 450, Quantity: 2, Subtotal: 900},
			{ProductID: "b", Name: "Baguette", Category: "Pan", UnitPrice: 200, Quantity: 1, Subtotal: 200},
		},
	}

	t.Run("AddOrder then GetOrders round-trips lines in position", func(t *testing.T) {
		if err := store.AddOrder(ctx, order); err != nil {
			t.Fatalf("AddOrder failed: %v", err)
		}
		if err := store.AddOrder(ctx, models.Order{ID: "o2", Total: 500, PaidAt: paidAt.Add(time.Minute)}); err != nil {
			t.Fatalf("AddOrder failed: %v", err)
		}

		orders, err := store.GetOrders(ctx)
		if err != nil {
			t.Fatalf("GetOrders failed: %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("got %d orders, want 2", len(orders))
		}
		if orders[0].ID != "o1" || orders[1].ID != "o2" {
			t.Errorf("orders not oldest-first: %s, %s", orders[0].ID, orders[1].ID)
		}
		if !orders[0].PaidAt.Equal(paidAt) {
			t.Errorf("paidAt = %v, want %v", orders[0].PaidAt, paidAt)
		}
		if len(orders[0].Lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(orders[0].Lines))
		}
		if orders[0].Lines[0] != order.Lines[0] || orders[0].Lines[1] != order.Lines[1] {
			t.Errorf("lines not round-tripped: %+v", orders[0].Lines)
		}
	})

	t.Run("ClearOrders removes orders and their lines", func(t *testing.T) {
		if err := store.ClearOrders(ctx); err != nil {
			t.Fatalf("ClearOrders failed: %v", err)
		}
		orders, _ := store.GetOrders(ctx)
		if len(orders) != 0 {
			t.Errorf("got %d orders after clear, want 0", len(orders))
		}
	})
}

func TestSQLiteStoreDayMarks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	start, err := store.GetDay(ctx, storage.DayStart)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if !start.IsZero() {
		t.Errorf("unset mark should be the zero time, got %v", start)
	}

	stamp := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	if err := store.SetDay(ctx, storage.DayStart, stamp); err != nil {
		t.Fatalf("SetDay failed: %v", err)
	}
	if err := store.SetDay(ctx, storage.DayEnd, stamp.Add(9*time.Hour)); err != nil {
		t.Fatalf("SetDay failed: %v", err)
	}

	start, _ = store.GetDay(ctx, storage.DayStart)
	end, _ := store.GetDay(ctx, storage.DayEnd)
	if !start.Equal(stamp) || !end.Equal(stamp.Add(9*time.Hour)) {
		t.Errorf("marks not round-tripped: %v / %v", start, end)
	}

	if err := store.ClearDay(ctx); err != nil {
		t.Fatalf("ClearDay failed: %v", err)
	}
	start, _ = store.GetDay(ctx, storage.DayStart)
	end, _ = store.GetDay(ctx, storage.DayEnd)
	if !start.IsZero() || !end.IsZero() {
		t.Errorf("marks survive ClearDay: %v / %v", start, end)
	}
}

func TestSQLiteStoreSettings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	value, err := store.GetSetting(ctx, "payment_qr")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if value != "" {
		t.Errorf("absent setting should be empty, got %q", value)
	}

	if err := store.SetSetting(ctx, "payment_qr", "data:image/png;base64,abc"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := store.SetSetting(ctx, "payment_qr", "data:image/png;base64,def"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}

	value, _ = store.GetSetting(ctx, "payment_qr")
	if value != "data:image/png;base64,def" {
		t.Errorf("got %q, want the overwritten value", value)
	}
}
