// Package summary derives the end-of-day report from a session's orders.
//
// Everything here is a read-only projection: the same order list always
// produces the same report, and stored orders are never touched.
package summary

import "github.com/pmdelgado/kiosco/internal/models"

// CategoryGroup is the portion of one order that belongs to a category.
type CategoryGroup struct {
	Category string             `json:"category"`
	Total    models.Money       `json:"total"`
	Lines    []models.OrderLine `json:"lines"`
}

// DayReport is the closed-out view of a trading day.
type DayReport struct {
	Start      string         `json:"start,omitempty"`
	End        string         `json:"end,omitempty"`
	OrderCount int            `json:"orderCount"`
	Total      models.Money   `json:"total"`
	Orders     []models.Order `json:"orders"`
}

// DayTotal sums the totals of all orders in the session.
func DayTotal(orders []models.Order) models.Money {
	var sum models.Money
	for _, o := range orders {
		sum += o.Total
	}
	return sum
}

// GroupByCategory splits one order's lines into per-category groups,
// preserving the order in which each category first appears among the
// lines. Lines are carried into their group unmodified.
func GroupByCategory(o models.Order) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, line := range o.Lines {
		i, seen := index[line.Category]
		if !seen {
			i = len(groups)
			index[line.Category] = i
			groups = append(groups, CategoryGroup{Category: line.Category})
		}
		groups[i].Total += line.Subtotal
		groups[i].Lines = append(groups[i].Lines, line)
	}
	return groups
}

// Day builds the report for a session. Orders are listed newest first, the
// order the closing screen shows them in.
func Day(session models.DaySession) DayReport {
	orders := make([]models.Order, len(session.Orders))
	for i, o := range session.Orders {
		orders[len(session.Orders)-1-i] = o
	}

	report := DayReport{
		OrderCount: len(session.Orders),
		Total:      DayTotal(session.Orders),
		Orders:     orders,
	}
	if !session.Start.IsZero() {
		report.Start = session.Start.Format("2006-01-02 15:04:05")
	}
	if !session.End.IsZero() {
		report.End = session.End.Format("2006-01-02 15:04:05")
	}
	return report
}
