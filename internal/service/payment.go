package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/repository"
)

type paymentService struct {
	queries repository.Querier
	logger  *slog.Logger
}

// NewPaymentService creates a payment service.
func NewPaymentService(queries repository.Querier, logger *slog.Logger) domain.PaymentService {
	return &paymentService{queries: queries, logger: logger}
}

// Record persists a payment row against an order. A SUCCEEDED payment also
// transitions the order to PAID; recording a second success against the
// same order is a conflict.
func (s *paymentService) Record(ctx context.Context, params domain.RecordPaymentParams) (*domain.Payment, error) {
	const op = "payment.record"

	if !params.Status.Valid() {
		return nil, domain.Invalid(op, "invalid payment status")
	}
	if params.Provider == "" {
		return nil, domain.Invalid(op, "payment provider is required")
	}

	orderID, err := parseID(op, "order", params.OrderID)
	if err != nil {
		return nil, err
	}
	order, err := s.queries.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.Internal(err, op, "failed to get order")
	}

	if params.Status == domain.PaymentStatusSucceeded {
		if !domain.OrderStatus(order.Status).CanTransition(domain.OrderStatusPaid) {
			return nil, domain.Conflict(op, "order is not payable in status "+order.Status)
		}
	}

	row, err := s.queries.CreatePayment(ctx, repository.CreatePaymentParams{
		OrderID:           orderID,
		Provider:          params.Provider,
		ProviderReference: params.ProviderReference,
		Amount:            params.Amount,
		Currency:          domain.NormalizeCurrency(params.Currency),
		Status:            string(params.Status),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to record payment")
	}

	if params.Status == domain.PaymentStatusSucceeded {
		affected, err := s.queries.UpdateOrderStatus(ctx, repository.UpdateOrderStatusParams{
			ID:     orderID,
			Status: string(domain.OrderStatusPaid),
		})
		if err != nil {
			return nil, domain.Internal(err, op, "failed to mark order paid")
		}
		if affected == 0 {
			return nil, domain.Internal(nil, op, "order disappeared while recording payment")
		}
	}

	payment := paymentFromRow(row)
	s.logger.Info("payment recorded",
		"payment_id", payment.ID,
		"order_id", payment.OrderID,
		"provider", payment.Provider,
		"status", string(payment.Status),
		"amount", domain.AmountString(payment.Amount))
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	const op = "payment.get"

	id, err := parseID(op, "payment", paymentID)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, domain.Internal(err, op, "failed to get payment")
	}
	return paymentFromRow(row), nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	const op = "payment.list"

	rows, err := s.queries.ListPayments(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list payments")
	}

	payments := make([]domain.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, *paymentFromRow(row))
	}
	return payments, nil
}
