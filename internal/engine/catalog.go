package engine

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/pmdelgado/kiosco/internal/cart"
	"github.com/pmdelgado/kiosco/internal/models"
	"github.com/pmdelgado/kiosco/internal/normalize"
)

// minQueryLen is how many characters the search box needs before the query
// filter kicks in.
const minQueryLen = 3

// Cart returns a copy of the in-progress cart.
func (e *Engine) Cart() cart.Cart {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := make(cart.Cart, len(e.cart))
	copy(c, e.cart)
	return c
}

// Total is the current cart total.
func (e *Engine) Total() models.Money {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cart.TotalOf(e.cart)
}

// AddToCart adds one unit of the product to the cart. Unknown ids are a
// silent no-op, so a double-tap on a just-deleted product does nothing.
func (e *Engine) AddToCart(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range e.products {
		if p.ID == productID {
			e.cart = cart.Add(e.cart, p)
			return
		}
	}
}

// RemoveFromCart removes one unit of the product from the cart, dropping
// the line at zero. Absent ids are a silent no-op.
func (e *Engine) RemoveFromCart(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = cart.Remove(e.cart, productID)
}

// ClearCart empties the cart.
func (e *Engine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = cart.Clear()
}

// Products returns the full catalog.
func (e *Engine) Products() []models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	products := make([]models.Product, len(e.products))
	copy(products, e.products)
	return products
}

// Categories returns the category list, sorted by display name.
func (e *Engine) Categories() []models.Category {
	e.mu.Lock()
	defer e.mu.Unlock()

	categories := make([]models.Category, len(e.categories))
	copy(categories, e.categories)
	return categories
}

// CategoryNames returns the filter choices: the all-categories sentinel
// followed by every category display name.
func (e *Engine) CategoryNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.categories)+1)
	names = append(names, AllCategories)
	for _, c := range e.categories {
		names = append(names, c.Name)
	}
	return names
}

// SetCategoryFilter selects the active category filter. Unknown names fall
// back to the all-categories sentinel.
func (e *Engine) SetCategoryFilter(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == AllCategories {
		e.filter = AllCategories
		return
	}
	for _, c := range e.categories {
		if c.Name == name {
			e.filter = name
			return
		}
	}
	e.filter = AllCategories
}

// SetQuery sets the search text. The filter only applies at three or more
// characters after trimming.
func (e *Engine) SetQuery(q string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query = q
}

// FilteredProducts applies the category filter and search query and returns
// the result sorted by name.
func (e *Engine) FilteredProducts() []models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	var list []models.Product
	q := strings.ToLower(strings.TrimSpace(e.query))
	for _, p := range e.products {
		if e.filter != AllCategories && p.Category != e.filter {
			continue
		}
		if len(q) >= minQueryLen {
			haystack := strings.ToLower(p.Name + " " + p.Category)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// CategoryReason says why CreateCategory was rejected.
type CategoryReason string

const (
	// ReasonEmpty: the name was empty after normalization.
	ReasonEmpty CategoryReason = "empty"

	// ReasonExists: a category with the same key already exists.
	ReasonExists CategoryReason = "exists"

	// ReasonInUse: the category still has products referencing it.
	ReasonInUse CategoryReason = "in_use"
)

// CategoryResult is the outcome of a category operation.
type CategoryResult struct {
	OK     bool            `json:"ok"`
	Reason CategoryReason  `json:"reason,omitempty"`
	// ExistingName carries the display name of the colliding category on a
	// ReasonExists rejection, for the caller's messaging.
	ExistingName string           `json:"existingName,omitempty"`
	Category     *models.Category `json:"category,omitempty"`
}

// CreateCategory normalizes the raw input into a display name and dedup
// key and persists the category. Rejected with ReasonEmpty for blank input
// and ReasonExists when the key collides ("Dulces" and "dulces" are the
// same category). The in-memory list stays sorted by display name.
func (e *Engine) CreateCategory(ctx context.Context, raw string) (CategoryResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name := normalize.PrettyCategoryName(raw)
	key := normalize.CategoryKey(raw)
	if name == "" || key == "" {
		return CategoryResult{OK: false, Reason: ReasonEmpty}, nil
	}

	for _, c := range e.categories {
		if c.Key == key {
			return CategoryResult{OK: false, Reason: ReasonExists, ExistingName: c.Name}, nil
		}
	}

	category := models.Category{Key: key, Name: name}
	if err := e.store.UpsertCategory(ctx, category); err != nil {
		return CategoryResult{}, err
	}

	e.categories = append(e.categories, category)
	sort.Slice(e.categories, func(i, j int) bool { return e.categories[i].Name < e.categories[j].Name })

	slog.Info("Category created", "key", key, "name", name)
	return CategoryResult{OK: true, Category: &category}, nil
}

// DeleteCategory removes an unreferenced category. Rejected with
// ReasonInUse while any product carries the category's display name. An
// unknown key is a silent no-op reported as success. When the deleted
// category was the active filter, the filter resets to the sentinel.
func (e *Engine) DeleteCategory(ctx context.Context, key string) (CategoryResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, c := range e.categories {
		if c.Key == key {
			idx = i
			break
		}
	}
	if idx == -1 {
		return CategoryResult{OK: true}, nil
	}

	name := e.categories[idx].Name
	for _, p := range e.products {
		if p.Category == name {
			return CategoryResult{OK: false, Reason: ReasonInUse, ExistingName: name}, nil
		}
	}

	if err := e.store.DeleteCategory(ctx, key); err != nil {
		return CategoryResult{}, err
	}

	e.categories = append(e.categories[:idx], e.categories[idx+1:]...)
	if e.filter == name {
		e.filter = AllCategories
	}

	slog.Info("Category deleted", "key", key, "name", name)
	return CategoryResult{OK: true}, nil
}

// AddProduct creates a catalog product: the name gets its first letter
// capitalized, the category is display-cased with a fallback for blank
// input, and the id comes from the id generator.
func (e *Engine) AddProduct(ctx context.Context, name string, price models.Money, categoryName string, image models.ProductImage) (*models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	category := normalize.PrettyCategoryName(categoryName)
	if category == "" {
		category = FallbackCategory
	}
	if image.Kind == "" {
		image = models.NoImage
	}

	p := models.Product{
		ID:       e.newID(),
		Name:     normalize.CapitalizeFirst(name),
		Price:    price,
		Category: category,
		Image:    image,
	}

	if err := e.store.UpsertProduct(ctx, p); err != nil {
		return nil, err
	}
	if err := e.refreshProducts(ctx); err != nil {
		return nil, err
	}

	slog.Info("Product added", "product_id", p.ID, "name", p.Name, "category", p.Category)
	return &p, nil
}

// UpdateProduct edits an existing product. Unknown ids are a silent no-op
// returning nil. keepImage preserves the stored image when no new one is
// supplied; otherwise the image is replaced (or cleared).
func (e *Engine) UpdateProduct(ctx context.Context, id, name string, price models.Money, categoryName string, image models.ProductImage, keepImage bool) (*models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var current *models.Product
	for i := range e.products {
		if e.products[i].ID == id {
			current = &e.products[i]
			break
		}
	}
	if current == nil {
		return nil, nil
	}

	category := normalize.PrettyCategoryName(categoryName)
	if category == "" {
		category = FallbackCategory
	}

	updated := *current
	updated.Name = normalize.CapitalizeFirst(name)
	updated.Price = price
	updated.Category = category
	if !keepImage {
		updated.Image = models.NoImage
	}
	if image.Kind != "" && image.Kind != models.ImageNone {
		updated.Image = image
	}

	if err := e.store.UpsertProduct(ctx, updated); err != nil {
		return nil, err
	}
	if err := e.refreshProducts(ctx); err != nil {
		return nil, err
	}

	slog.Info("Product updated", "product_id", id)
	return &updated, nil
}

// DeleteProduct removes a product from the catalog and from the live cart.
// Orders already confirmed keep their snapshot of it. Absent ids are a
// silent no-op.
func (e *Engine) DeleteProduct(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	if err := e.refreshProducts(ctx); err != nil {
		return err
	}
	e.cart = cart.Drop(e.cart, id)

	slog.Info("Product deleted", "product_id", id)
	return nil
}

// refreshProducts reloads the catalog from the store. Caller holds the lock.
func (e *Engine) refreshProducts(ctx context.Context) error {
	products, err := e.store.GetProducts(ctx)
	if err != nil {
		return err
	}
	e.products = products
	return nil
}

// PaymentQR returns the stored payment QR reference, "" when unset.
func (e *Engine) PaymentQR() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paymentQR
}

// SetPaymentQR stores the payment QR reference. The value is opaque to the
// engine (a file path or data URL in practice).
func (e *Engine) SetPaymentQR(ctx context.Context, ref string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.SetSetting(ctx, settingPaymentQR, ref); err != nil {
		return err
	}
	e.paymentQR = ref
	return nil
}
