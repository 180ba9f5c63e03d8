package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Order domain errors.
var (
	ErrOrderNotFound = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrEmptyOrder    = &Error{Code: EINVALID, Message: "Order must contain at least one item"}
)

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// orderTransitions is the explicit transition table. PAID and CANCELLED are
// terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated: {OrderStatusPaid, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderService creates and retrieves immutable order snapshots.
type OrderService interface {
	// CreateFromItems resolves each requested product, validates currency
	// consistency, and persists the order with its lines atomically.
	CreateFromItems(ctx context.Context, params CreateOrderParams) (*Order, error)

	// CreateFromCart builds an order from a cart's current lines using the
	// cart's snapshotted unit prices verbatim. When params.TotalOverride is
	// set it becomes the order total instead of the recomputed line sum.
	CreateFromCart(ctx context.Context, cart *CartSummary, params CreateFromCartParams) (*Order, error)

	// GetOrder retrieves a single order with its lines.
	GetOrder(ctx context.Context, orderID string) (*Order, error)

	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]Order, error)
}

// CreateOrderParams contains parameters for direct order creation.
type CreateOrderParams struct {
	CustomerName  string
	CustomerEmail string
	Currency      string
	Items         []OrderItemRequest
}

// OrderItemRequest is one requested (product, quantity) pair.
type OrderItemRequest struct {
	ProductID string
	Quantity  int32
}

// CreateFromCartParams contains parameters for cart-sourced order creation.
type CreateFromCartParams struct {
	CustomerName  string
	CustomerEmail string
	Currency      string
	Status        OrderStatus
	// TotalOverride, when non-nil, is the authoritative order total (the
	// amount agreed with the payment provider at intent-creation time).
	TotalOverride *decimal.Decimal
}

// Order is an immutable snapshot of purchased line items.
// Invariant: TotalAmount == sum of line totals unless the checkout
// orchestrator pinned the intent-time amount; all lines share Currency.
type Order struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Currency      string
	Status        OrderStatus
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Lines         []OrderLine
}

// OrderLine is an order line with the unit price frozen at order-creation
// time. It never tracks later catalog price changes.
type OrderLine struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}
