package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

var ErrPaymentNotFound = &Error{Code: ENOTFOUND, Message: "Payment not found"}

// PaymentStatus enumerates settlement states reported by the provider.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSucceeded PaymentStatus = "SUCCEEDED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSucceeded, PaymentStatusFailed:
		return true
	}
	return false
}

// PaymentService persists payment outcomes against orders.
type PaymentService interface {
	// Record persists a payment row and, when status is SUCCEEDED,
	// transitions the order to PAID. Exactly one order-status write per
	// successful recording.
	Record(ctx context.Context, params RecordPaymentParams) (*Payment, error)

	// GetPayment retrieves a single payment by ID.
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)

	// ListPayments returns all payments, newest first.
	ListPayments(ctx context.Context) ([]Payment, error)
}

// RecordPaymentParams contains parameters for recording a payment.
type RecordPaymentParams struct {
	OrderID           string
	Provider          string
	ProviderReference string
	Amount            decimal.Decimal
	Currency          string
	Status            PaymentStatus
}

// Payment records a funds settlement against exactly one order. Multiple
// rows per order may exist (retries) but only one should be SUCCEEDED.
type Payment struct {
	ID                string
	OrderID           string
	Provider          string
	ProviderReference string
	Amount            decimal.Decimal
	Currency          string
	Status            PaymentStatus
	CreatedAt         time.Time
}
