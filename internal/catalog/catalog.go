// Package catalog holds the default product catalog used to seed an empty
// store on first run.
package catalog

import "github.com/pmdelgado/kiosco/internal/models"

// Default returns the starter catalog. Ids are stable slugs so reseeding
// an emptied store yields the same identities; admin-created products use
// generated ids instead.
func Default() []models.Product {
	return []models.Product{
		{ID: "pan-frances", Name: "Pan francés", Price: 50, Category: "Pan", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/pan-frances.jpg"}},
		{ID: "pan-ciabatta", Name: "Pan ciabatta", Price: 80, Category: "Pan", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/pan-ciabatta.jpg"}},
		{ID: "baguette", Name: "Baguette", Price: 350, Category: "Pan", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/baguette.jpg"}},
		{ID: "empanada-pollo", Name: "Empanada de pollo", Price: 450, Category: "Salados", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/empanada-pollo.jpg"}},
		{ID: "empanada-carne", Name: "Empanada de carne", Price: 450, Category: "Salados", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/empanada-carne.jpg"}},
		{ID: "alfajor", Name: "Alfajor", Price: 200, Category: "Dulces", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/alfajor.jpg"}},
		{ID: "torta-chocolate", Name: "Torta de chocolate", Price: 600, Category: "Dulces", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/torta-chocolate.jpg"}},
		{ID: "cafe-pasado", Name: "Café pasado", Price: 300, Category: "Bebidas", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/cafe-pasado.jpg"}},
		{ID: "chicha-morada", Name: "Chicha morada", Price: 250, Category: "Bebidas", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/chicha-morada.jpg"}},
		{ID: "jugo-naranja", Name: "Jugo de naranja", Price: 400, Category: "Bebidas", Image: models.ProductImage{Kind: models.ImageFile, Value: "products/jugo-naranja.jpg"}},
	}
}
