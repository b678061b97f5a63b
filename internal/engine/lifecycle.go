package engine

import (
	"context"
	"log/slog"

	"github.com/pmdelgado/kiosco/internal/cart"
	"github.com/pmdelgado/kiosco/internal/models"
	"github.com/pmdelgado/kiosco/internal/storage"
)

// Transition is the outcome of a lifecycle operation. Applied is false when
// the precondition failed: nothing changed, nothing was persisted, and
// State still reports where the session is.
type Transition struct {
	Applied bool  `json:"applied"`
	State   State `json:"state"`
}

// ConfirmResult is the outcome of ConfirmPaid, carrying the created order
// when the confirmation went through.
type ConfirmResult struct {
	Transition
	Order *models.Order `json:"order,omitempty"`
}

func (e *Engine) rejected() Transition {
	return Transition{Applied: false, State: e.state}
}

func (e *Engine) applied() Transition {
	return Transition{Applied: true, State: e.state}
}

// StartDay opens a fresh trading day: stamps the start mark, clears the end
// mark, and empties the order list and cart. It is a hard reset: starting
// over while a day is already open discards that day's unconfirmed cart and
// makes its orders unreachable from the live session.
//
// In-memory state changes before the store writes; a persist failure leaves
// the session ahead of the store (the caller retries or rebuilds the
// engine), never the other way around.
func (e *Engine) StartDay(ctx context.Context) (Transition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	e.day = models.DaySession{Start: now}
	e.cart = cart.Clear()
	e.state = StateOrder

	if err := e.store.ClearOrders(ctx); err != nil {
		return e.applied(), err
	}
	if err := e.store.ClearDay(ctx); err != nil {
		return e.applied(), err
	}
	if err := e.store.SetDay(ctx, storage.DayStart, now); err != nil {
		return e.applied(), err
	}

	slog.Info("Day started", "at", now)
	return e.applied(), nil
}

// GoToCheckout navigates from the order screen to checkout. Pure view
// state: no persistence, freely reversible, and an empty cart may enter
// (only confirming requires a positive total).
func (e *Engine) GoToCheckout() Transition {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateOrder {
		return e.rejected()
	}
	e.state = StateCheckout
	return e.applied()
}

// BackToOrder navigates from checkout back to the order screen.
func (e *Engine) BackToOrder() Transition {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateCheckout {
		return e.rejected()
	}
	e.state = StateOrder
	return e.applied()
}

// ConfirmPaid converts the cart into an immutable order: every cart item is
// snapshotted into an order line at its current unit price, the order total
// is the sum of those subtotals (identical to the cart total), and the cart
// is cleared. Rejected outside checkout and whenever the total is not
// positive.
func (e *Engine) ConfirmPaid(ctx context.Context) (ConfirmResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateCheckout {
		return ConfirmResult{Transition: e.rejected()}, nil
	}
	total := cart.TotalOf(e.cart)
	if total <= 0 {
		return ConfirmResult{Transition: e.rejected()}, nil
	}

	order := models.Order{
		ID:     e.newID(),
		Total:  total,
		PaidAt: e.now(),
		Lines:  cart.Lines(e.cart),
	}

	e.day.Orders = append(e.day.Orders, order)
	e.cart = cart.Clear()
	e.state = StateOrder

	if err := e.store.AddOrder(ctx, order); err != nil {
		return ConfirmResult{Transition: e.applied(), Order: &order}, err
	}

	slog.Info("Order confirmed", "order_id", order.ID, "total", order.Total, "lines", len(order.Lines))
	return ConfirmResult{Transition: e.applied(), Order: &order}, nil
}

// EndDay stamps the end mark and freezes the session: no StartDay or
// ConfirmPaid is accepted until a new day is explicitly started. Rejected
// outside the order screen.
func (e *Engine) EndDay(ctx context.Context) (Transition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateOrder {
		return e.rejected(), nil
	}

	now := e.now()
	e.day.End = now
	e.state = StateEndDay

	if err := e.store.SetDay(ctx, storage.DayEnd, now); err != nil {
		return e.applied(), err
	}

	slog.Info("Day ended", "at", now, "orders", len(e.day.Orders), "total", e.day.Total())
	return e.applied(), nil
}

// CloseApp tears the whole session down, in memory and in the store, and
// returns to the welcome screen. This is the only operation that erases a
// day's session state; unlike StartDay it does not open a new day.
func (e *Engine) CloseApp(ctx context.Context) (Transition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateWelcome {
		return e.rejected(), nil
	}

	e.state = StateWelcome
	e.cart = cart.Clear()
	e.day = models.DaySession{}

	if err := e.store.ClearOrders(ctx); err != nil {
		return e.applied(), err
	}
	if err := e.store.ClearDay(ctx); err != nil {
		return e.applied(), err
	}

	slog.Info("Session closed")
	return e.applied(), nil
}
