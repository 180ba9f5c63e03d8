package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}

// ProductService provides catalog lookups and admin-gated writes.
// The checkout core only ever reads from it.
type ProductService interface {
	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, productID string) (*Product, error)

	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]Product, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, params ProductParams) (*Product, error)

	// UpdateProduct replaces a product's attributes.
	UpdateProduct(ctx context.Context, productID string, params ProductParams) (*Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, productID string) error
}

// Product is a catalog entry. Unit price and currency are snapshotted into
// cart lines at add-time; later catalog edits never touch existing lines.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductParams contains the writable attributes of a product.
type ProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	ImageURL    string
}
