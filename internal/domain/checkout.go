package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Checkout domain errors.
var (
	// ErrMissingPaymentContext guards reconciliation: a capture for an
	// unknown or already-consumed provider order id is rejected rather than
	// creating a duplicate order.
	ErrMissingPaymentContext = &Error{Code: EINVALID, Message: "Missing payment context"}
)

// CheckoutService orchestrates the two-phase payment protocol against the
// external provider and reconciles captures into local orders and payments.
//
// States per checkout attempt:
//
//	NO_INTENT -> INTENT_CREATED (context stored)
//	          -> CAPTURED_RECONCILED (context consumed, order+payment persisted, cart deleted)
//
// Failures at any step leave the prior state unchanged; a failed capture
// leaves the context in place for retry.
type CheckoutService interface {
	// CreateIntent opens a remote payment intent for a cart and retains the
	// {cart, amount, currency} association keyed by the provider order id.
	CreateIntent(ctx context.Context, cartID string, amount decimal.Decimal, currency string) (*GatewayOrder, error)

	// CaptureIntent finalizes the remote intent and reconciles it: builds
	// the order from the cart's current lines with the intent-time amount as
	// the authoritative total, records the payment, deletes the cart and
	// consumes the pending context (context removal last).
	CaptureIntent(ctx context.Context, providerOrderID string, principal *Principal) (*GatewayOrder, error)
}

// GatewayOrder is the provider's view of a remote payment intent.
type GatewayOrder struct {
	ProviderOrderID string
	Status          string
}
