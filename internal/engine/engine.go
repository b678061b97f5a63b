// Package engine implements the day/order/cart lifecycle of the kiosk.
//
// The engine is the single mutator of session state. Screens are external:
// they render whatever State reports and invoke exactly one operation per
// user action. Transitions whose precondition fails are rejected as a typed
// result with no state change; only store failures surface as errors.
//
// A mutex serializes every operation. The till itself is single-operator,
// but the HTTP surface can deliver overlapping requests, and two interleaved
// confirmations against one cart would corrupt the order total invariant.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pmdelgado/kiosco/internal/cart"
	"github.com/pmdelgado/kiosco/internal/models"
	"github.com/pmdelgado/kiosco/internal/normalize"
	"github.com/pmdelgado/kiosco/internal/storage"
)

// State is one of the four screens the lifecycle moves through.
type State string

const (
	StateWelcome  State = "welcome"
	StateOrder    State = "order"
	StateCheckout State = "checkout"
	StateEndDay   State = "endday"
)

// AllCategories is the sentinel filter value meaning "no category filter".
const AllCategories = "Todos"

// FallbackCategory is assigned to products saved with an empty category.
const FallbackCategory = "Otros"

// settingPaymentQR is the settings key holding the payment QR reference.
const settingPaymentQR = "payment_qr"

// Clock supplies the current time. Injected so tests run deterministically.
type Clock func() time.Time

// IDGen supplies fresh unique ids for orders and products.
type IDGen func() string

// Engine owns the in-memory session state and drives all persistence.
type Engine struct {
	mu    sync.Mutex
	store storage.Store
	now   Clock
	newID IDGen

	state      State
	cart       cart.Cart
	day        models.DaySession
	products   []models.Product
	categories []models.Category
	filter     string
	query      string
	paymentQR  string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.now = c }
}

// WithIDGen replaces the id generator.
func WithIDGen(g IDGen) Option {
	return func(e *Engine) { e.newID = g }
}

// New builds an engine on top of the store and restores the persisted day
// session: no start mark means welcome, an open day resumes on the order
// screen, a finished day lands on the end-of-day screen. Checkout is never
// a restored state. The cart always starts empty; in-progress carts are
// deliberately not durable, only confirmed orders are.
//
// An empty store is seeded with defaultCatalog, and categories are derived
// from the products when none are stored yet.
func New(ctx context.Context, store storage.Store, defaultCatalog []models.Product, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:  store,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		cart:   cart.Clear(),
		filter: AllCategories,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.load(ctx, defaultCatalog); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) load(ctx context.Context, defaultCatalog []models.Product) error {
	start, err := e.store.GetDay(ctx, storage.DayStart)
	if err != nil {
		return fmt.Errorf("load day start: %w", err)
	}
	end, err := e.store.GetDay(ctx, storage.DayEnd)
	if err != nil {
		return fmt.Errorf("load day end: %w", err)
	}
	orders, err := e.store.GetOrders(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	e.day = models.DaySession{Start: start, End: end, Orders: orders}

	switch {
	case start.IsZero():
		e.state = StateWelcome
	case end.IsZero():
		e.state = StateOrder
	default:
		e.state = StateEndDay
	}

	products, err := e.store.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	if len(products) == 0 && len(defaultCatalog) > 0 {
		if err := e.store.SetProducts(ctx, defaultCatalog); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		products = defaultCatalog
		slog.Info("Seeded default catalog", "products", len(products))
	}
	e.products = products

	categories, err := e.store.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if len(categories) == 0 {
		categories = deriveCategories(products)
		for _, c := range categories {
			if err := e.store.UpsertCategory(ctx, c); err != nil {
				return fmt.Errorf("seed category: %w", err)
			}
		}
	}
	e.categories = categories

	qr, err := e.store.GetSetting(ctx, settingPaymentQR)
	if err != nil {
		return fmt.Errorf("load payment qr: %w", err)
	}
	e.paymentQR = qr

	slog.Info("Session restored",
		"state", e.state,
		"orders", len(e.day.Orders),
		"products", len(e.products),
		"categories", len(e.categories),
	)
	return nil
}

// deriveCategories builds the category list from the products' category
// names, first-seen key wins, sorted by display name.
func deriveCategories(products []models.Product) []models.Category {
	seen := make(map[string]bool)
	var categories []models.Category
	for _, p := range products {
		key := normalize.CategoryKey(p.Category)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, models.Category{
			Key:  key,
			Name: normalize.PrettyCategoryName(p.Category),
		})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories
}

// State reports the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Session returns a copy of the current day session.
func (e *Engine) Session() models.DaySession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotSession()
}

func (e *Engine) snapshotSession() models.DaySession {
	orders := make([]models.Order, len(e.day.Orders))
	copy(orders, e.day.Orders)
	return models.DaySession{Start: e.day.Start, End: e.day.End, Orders: orders}
}
