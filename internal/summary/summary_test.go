package summary

import (
	"testing"
	"time"

	"github.com/pmdelgado/kiosco/internal/models"
)

func TestGroupByCategory(t *testing.T) {
	order := models.Order{
		ID:    "o1",
		Total: 1000,
		Lines: []models.OrderLine{
			{ProductID: "p1", Category: "Pan", Subtotal: 500},
			{ProductID: "p2", Category: "Pan", Subtotal: 300},
			{ProductID: "p3", Category: "Dulces", Subtotal: 200},
		},
	}

	groups := GroupByCategory(order)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// First-seen order among the lines, not alphabetical.
	if groups[0].Category != "Pan" || groups[0].Total != 800 {
		t.Errorf("group 0 = %s/%d, want Pan/800", groups[0].Category, groups[0].Total)
	}
	if groups[1].Category != "Dulces" || groups[1].Total != 200 {
		t.Errorf("group 1 = %s/%d, want Dulces/200", groups[1].Category, groups[1].Total)
	}
	if len(groups[0].Lines) != 2 || len(groups[1].Lines) != 1 {
		t.Errorf("line counts = %d/%d, want 2/1", len(groups[0].Lines), len(groups[1].Lines))
	}
	if groups[0].Lines[0] != order.Lines[0] {
		t.Errorf("lines must be carried unmodified, got %+v", groups[0].Lines[0])
	}
}

func TestGroupByCategoryDeterministic(t *testing.T) {
	order := models.Order{
		Lines: []models.OrderLine{
			{Category: "Bebidas", Subtotal: 300},
			{Category: "Pan", Subtotal: 100},
			{Category: "Bebidas", Subtotal: 250},
		},
	}

	first := GroupByCategory(order)
	second := GroupByCategory(order)

	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Category != second[i].Category || first[i].Total != second[i].Total {
			t.Errorf("group %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDayTotal(t *testing.T) {
	orders := []models.Order{
		{Total: 1100},
		{Total: 450},
		{Total: 50},
	}
	if got := DayTotal(orders); got != 1600 {
		t.Errorf("DayTotal = %d, want 1600", got)
	}
	if got := DayTotal(nil); got != 0 {
		t.Errorf("DayTotal(nil) = %d, want 0", got)
	}
}

func TestDayReport(t *testing.T) {
	start := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	end := start.Add(9 * time.Hour)
	session := models.DaySession{
		Start: start,
		End:   end,
		Orders: []models.Order{
			{ID: "first", Total: 500},
			{ID: "second", Total: 700},
		},
	}

	report := Day(session)

	if report.OrderCount != 2 || report.Total != 1200 {
		t.Errorf("report = count %d total %d, want 2/1200", report.OrderCount, report.Total)
	}
	// Newest first for the closing screen.
	if report.Orders[0].ID != "second" || report.Orders[1].ID != "first" {
		t.Errorf("orders not newest-first: %s, %s", report.Orders[0].ID, report.Orders[1].ID)
	}
	if report.Start == "" || report.End == "" {
		t.Errorf("timestamps missing: start %q end %q", report.Start, report.End)
	}

	// The projection must not touch the session.
	if session.Orders[0].ID != "first" {
		t.Errorf("session mutated by Day()")
	}
}
