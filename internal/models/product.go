package models

// ImageKind discriminates the ProductImage variants.
type ImageKind string

const (
	// ImageNone means the product has no picture.
	ImageNone ImageKind = "none"

	// ImageFile references a bundled asset by path.
	ImageFile ImageKind = "file"

	// ImageInline carries an uploaded picture as a data URL.
	ImageInline ImageKind = "inline"
)

// ProductImage is a tagged variant: exactly one of the kinds applies and
// Value is meaningful only for ImageFile (a path) and ImageInline (a data
// URL). This replaces a pair of independently-nullable fields, which allowed
// both to be set at once.
type ProductImage struct {
	Kind  ImageKind `json:"kind"`
	Value string    `json:"value,omitempty"`
}

// NoImage is the zero ProductImage.
var NoImage = ProductImage{Kind: ImageNone}

// Product is an item on sale.
//
// Products belong to the catalog and change only through explicit admin
// edits. Cart and order operations never mutate a product; orders snapshot
// the fields they need (see OrderLine).
type Product struct {
	// ID is the unique identifier for the product (UUID format).
	ID string `json:"id"`

	// Name is the display name, first letter capitalized.
	Name string `json:"name"`

	// Price is the unit price in céntimos. Never negative.
	Price Money `json:"price"`

	// Category is the display name of the category this product belongs to.
	Category string `json:"category"`

	// Image is the optional product picture.
	Image ProductImage `json:"image"`
}
