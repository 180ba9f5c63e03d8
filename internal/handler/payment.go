package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/codeop/store/internal/domain"
)

type recordPaymentRequest struct {
	OrderID           string `json:"order_id" validate:"required"`
	Provider          string `json:"provider" validate:"required"`
	ProviderReference string `json:"provider_reference"`
	Amount            string `json:"amount" validate:"required"`
	Currency          string `json:"currency" validate:"required"`
	Status            string `json:"status" validate:"omitempty,oneof=PENDING SUCCEEDED FAILED"`
}

// CreatePayment records a payment against an order manually, outside the
// checkout flow. A SUCCEEDED record marks the order PAID. Status defaults
// to SUCCEEDED when omitted.
func (h *Handler) CreatePayment(c echo.Context) error {
	var req recordPaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return domain.Invalid("payment.parse", "amount must be a decimal string")
	}
	status := domain.PaymentStatus(req.Status)
	if status == "" {
		status = domain.PaymentStatusSucceeded
	}

	payment, err := h.payments.Record(c.Request().Context(), domain.RecordPaymentParams{
		OrderID:           req.OrderID,
		Provider:          req.Provider,
		ProviderReference: req.ProviderReference,
		Amount:            amount,
		Currency:          req.Currency,
		Status:            status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

func (h *Handler) GetPayment(c echo.Context) error {
	payment, err := h.payments.GetPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponse(payment))
}

func (h *Handler) ListPayments(c echo.Context) error {
	payments, err := h.payments.ListPayments(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, toPaymentResponse(&payments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
