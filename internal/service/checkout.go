package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/events"
	"github.com/codeop/store/internal/paypal"
	"github.com/codeop/store/internal/pending"
)

// ProviderPayPal is the provider label stored on payments created by the
// checkout orchestrator.
const ProviderPayPal = "paypal"

// guestEmailDomain is appended when a caller has no usable email address.
const guestEmailDomain = "@hygiene-store.local"

// Gateway is the slice of the payment provider client the orchestrator
// depends on.
type Gateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (*paypal.OrderResponse, error)
	CaptureOrder(ctx context.Context, providerOrderID string) (*paypal.OrderResponse, error)
}

type checkoutService struct {
	gateway   Gateway
	pending   pending.Store
	carts     domain.CartService
	orders    domain.OrderService
	payments  domain.PaymentService
	publisher events.Publisher
	logger    *slog.Logger
}

// NewCheckoutService creates the checkout orchestrator.
func NewCheckoutService(
	gateway Gateway,
	pendingStore pending.Store,
	carts domain.CartService,
	orders domain.OrderService,
	payments domain.PaymentService,
	publisher events.Publisher,
	logger *slog.Logger,
) domain.CheckoutService {
	return &checkoutService{
		gateway:   gateway,
		pending:   pendingStore,
		carts:     carts,
		orders:    orders,
		payments:  payments,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateIntent opens a remote payment intent and retains the association
// back to the cart. The amount stored here is authoritative at capture time
// even if the cart changes in between.
func (s *checkoutService) CreateIntent(ctx context.Context, cartID string, amount decimal.Decimal, currency string) (*domain.GatewayOrder, error) {
	const op = "checkout.create_intent"

	if !amount.IsPositive() {
		return nil, domain.Invalid(op, "amount must be greater than 0")
	}
	currency = domain.NormalizeCurrency(currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if _, err := s.carts.GetCart(ctx, cartID); err != nil {
		return nil, err
	}

	resp, err := s.gateway.CreateOrder(ctx, amount, currency)
	if err != nil {
		return nil, domain.BadGateway(err, op, "payment provider rejected order creation")
	}

	s.pending.Put(resp.ID, pending.Context{
		CartID:   cartID,
		Amount:   amount,
		Currency: currency,
	})

	s.logger.Info("payment intent created",
		"provider_order_id", resp.ID,
		"cart_id", cartID,
		"amount", domain.AmountString(amount),
		"currency", currency)
	return &domain.GatewayOrder{ProviderOrderID: resp.ID, Status: resp.Status}, nil
}

// CaptureIntent finalizes the remote intent and reconciles it into local
// state. The pending context is consumed last so any earlier failure leaves
// the attempt retryable; a capture with no context is rejected outright.
func (s *checkoutService) CaptureIntent(ctx context.Context, providerOrderID string, principal *domain.Principal) (*domain.GatewayOrder, error) {
	const op = "checkout.capture"

	resp, err := s.gateway.CaptureOrder(ctx, providerOrderID)
	if err != nil {
		return nil, domain.BadGateway(err, op, "payment provider rejected capture")
	}

	pc, ok := s.pending.Get(providerOrderID)
	if !ok {
		return nil, domain.ErrMissingPaymentContext
	}

	summary, err := s.carts.GetCart(ctx, pc.CartID)
	if err != nil {
		return nil, err
	}

	name, email := customerIdentity(principal)
	order, err := s.orders.CreateFromCart(ctx, summary, domain.CreateFromCartParams{
		CustomerName:  name,
		CustomerEmail: email,
		Currency:      pc.Currency,
		Status:        domain.OrderStatusCreated,
		TotalOverride: &pc.Amount,
	})
	if err != nil {
		return nil, err
	}

	payment, err := s.payments.Record(ctx, domain.RecordPaymentParams{
		OrderID:           order.ID,
		Provider:          ProviderPayPal,
		ProviderReference: providerOrderID,
		Amount:            pc.Amount,
		Currency:          pc.Currency,
		Status:            domain.PaymentStatusSucceeded,
	})
	if err != nil {
		return nil, err
	}

	// The order is paid from here on. The cart and the pending context are
	// cleanup; a failed cart delete must not resurrect the checkout, so it
	// is logged and the context is consumed regardless.
	if err := s.carts.DeleteCart(ctx, pc.CartID); err != nil {
		s.logger.Error("failed to delete cart after capture",
			"cart_id", pc.CartID, "order_id", order.ID, "error", err)
	}
	s.pending.Delete(providerOrderID)

	if err := s.publisher.PublishOrderPaid(events.OrderPaid{
		OrderID:         order.ID,
		PaymentID:       payment.ID,
		ProviderOrderID: providerOrderID,
		Amount:          domain.AmountString(pc.Amount),
		Currency:        pc.Currency,
		OccurredAt:      time.Now().UTC(),
	}); err != nil {
		s.logger.Error("failed to publish order paid event",
			"order_id", order.ID, "error", err)
	}

	s.logger.Info("capture reconciled",
		"provider_order_id", providerOrderID,
		"order_id", order.ID,
		"payment_id", payment.ID,
		"amount", domain.AmountString(pc.Amount),
		"currency", pc.Currency)
	return &domain.GatewayOrder{ProviderOrderID: resp.ID, Status: resp.Status}, nil
}

// customerIdentity derives the order's customer fields from the caller. An
// anonymous checkout gets a synthetic guest identity; an account without an
// email gets one synthesized from the username.
func customerIdentity(principal *domain.Principal) (name, email string) {
	if principal == nil {
		return "guest", "guest" + guestEmailDomain
	}
	name = principal.Username
	email = principal.Email
	if email == "" {
		email = principal.Username + guestEmailDomain
	}
	return name, email
}
