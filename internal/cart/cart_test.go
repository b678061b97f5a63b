package cart

import (
	"testing"

	"github.com/pmdelgado/kiosco/internal/models"
)

var (
	productA = models.Product{ID: "a", Name: "Alfajor", Price: 450, Category: "Dulces"}
	productB = models.Product{ID: "b", Name: "Baguette", Price: 200, Category: "Pan"}
)

func TestAdd(t *testing.T) {
	t.Run("new product appends with quantity 1", func(t *testing.T) {
		c := Add(Clear(), productA)
		if len(c) != 1 || c[0].Quantity != 1 {
			t.Fatalf("got %+v, want one item with quantity 1", c)
		}
	})

	t.Run("existing product increments in place", func(t *testing.T) {
		c := Add(Add(Add(Clear(), productA), productB), productA)
		if len(c) != 2 {
			t.Fatalf("got %d items, want 2", len(c))
		}
		if c[0].Product.ID != "a" || c[0].Quantity != 2 {
			t.Errorf("item 0 = %+v, want product a with quantity 2", c[0])
		}
		if c[1].Product.ID != "b" || c[1].Quantity != 1 {
			t.Errorf("item 1 = %+v, want product b with quantity 1", c[1])
		}
	})

	t.Run("input cart is not mutated", func(t *testing.T) {
		orig := Add(Clear(), productA)
		_ = Add(orig, productA)
		if orig[0].Quantity != 1 {
			t.Errorf("input cart mutated: quantity = %d", orig[0].Quantity)
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("decrements quantity", func(t *testing.T) {
		c := Add(Add(Clear(), productA), productA)
		c = Remove(c, "a")
		if len(c) != 1 || c[0].Quantity != 1 {
			t.Fatalf("got %+v, want quantity 1", c)
		}
	})

	t.Run("drops item at zero instead of keeping it", func(t *testing.T) {
		c := Remove(Add(Clear(), productA), "a")
		if len(c) != 0 {
			t.Fatalf("got %+v, want empty cart", c)
		}
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		c := Add(Clear(), productA)
		got := Remove(c, "nope")
		if len(got) != 1 || got[0] != c[0] {
			t.Fatalf("got %+v, want unchanged %+v", got, c)
		}
	})

	t.Run("add then remove n times restores the original", func(t *testing.T) {
		c := Add(Clear(), productB)
		n := 5
		for i := 0; i < n; i++ {
			c = Add(c, productA)
		}
		for i := 0; i < n; i++ {
			c = Remove(c, "a")
		}
		if len(c) != 1 || c[0].Product.ID != "b" || c[0].Quantity != 1 {
			t.Fatalf("got %+v, want just product b", c)
		}
	})
}

func TestTotalOf(t *testing.T) {
	tests := []struct {
		name string
		cart Cart
		want models.Money
	}{
		{"empty cart", Clear(), 0},
		{"single item", Add(Clear(), productA), 450},
		{"quantities multiply", Add(Add(Add(Clear(), productA), productA), productB), 1100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalOf(tt.cart); got != tt.want {
				t.Errorf("TotalOf = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	c := Add(Add(Add(Clear(), productA), productA), productB)
	lines := Lines(c)

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	want := models.OrderLine{
		ProductID: "a", Name: "Alfajor", Category: "Dulces",
		UnitPrice: 450, Quantity: 2, Subtotal: 900,
	}
	if lines[0] != want {
		t.Errorf("line 0 = %+v, want %+v", lines[0], want)
	}

	// The sum of line subtotals must equal the cart total; this is the
	// invariant that makes order.total trustworthy.
	var sum models.Money
	for _, l := range lines {
		sum += l.Subtotal
	}
	if sum != TotalOf(c) {
		t.Errorf("line subtotals sum to %d, cart total is %d", sum, TotalOf(c))
	}
}

func TestLinesSnapshotProductValues(t *testing.T) {
	p := productA
	c := Add(Clear(), p)
	lines := Lines(c)

	// Editing the product afterwards must not reach into the lines.
	p.Price = 999
	p.Name = "changed"
	if lines[0].UnitPrice != 450 || lines[0].Name != "Alfajor" {
		t.Errorf("line changed after product edit: %+v", lines[0])
	}
}
