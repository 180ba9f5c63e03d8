package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Cart domain errors.
var (
	ErrCartNotFound     = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrCartItemNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrInvalidQuantity  = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
)

// CartService provides business logic for shopping cart operations.
type CartService interface {
	// GetOrCreateForUser returns the single cart owned by a user, creating an
	// empty one on first access. Safe under concurrent first access.
	GetOrCreateForUser(ctx context.Context, userID string) (*CartSummary, error)

	// CreateCart creates an anonymous cart with no owning user.
	CreateCart(ctx context.Context) (*CartSummary, error)

	// GetCart retrieves a cart with all lines and calculated totals.
	GetCart(ctx context.Context, cartID string) (*CartSummary, error)

	// AddItem adds a product to the cart, merging quantities when a line for
	// the product already exists.
	AddItem(ctx context.Context, cartID, productID string, quantity int32) (*CartSummary, error)

	// UpdateItem sets the absolute quantity of an existing cart line.
	UpdateItem(ctx context.Context, cartID, lineID string, quantity int32) (*CartSummary, error)

	// RemoveItem deletes a cart line entirely.
	RemoveItem(ctx context.Context, cartID, lineID string) (*CartSummary, error)

	// DeleteCart removes a cart and all of its lines.
	DeleteCart(ctx context.Context, cartID string) error
}

// Cart is a lightweight cart view model. UserID is empty for anonymous carts.
type Cart struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartSummary aggregates a cart with its lines and calculated totals.
// Currency is the currency of the first line, DefaultCurrency when empty.
type CartSummary struct {
	Cart     Cart
	Lines    []CartLine
	Total    decimal.Decimal
	Currency string
}

// CartLine is a cart line item. UnitPrice and Currency were snapshotted from
// the catalog when the line was created.
type CartLine struct {
	ID          string
	ProductID   string
	ProductName string
	ImageURL    string
	Quantity    int32
	UnitPrice   decimal.Decimal
	Currency    string
	LineTotal   decimal.Decimal
}
