package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/middleware"
)

// stubPaymentService implements domain.PaymentService.
type stubPaymentService struct {
	payment  *domain.Payment
	err      error
	recorded *domain.RecordPaymentParams
}

func (s *stubPaymentService) Record(ctx context.Context, params domain.RecordPaymentParams) (*domain.Payment, error) {
	s.recorded = &params
	if s.err != nil {
		return nil, s.err
	}
	return s.payment, nil
}

func (s *stubPaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.payment, s.err
}

func (s *stubPaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return nil, s.err
}

func newPaymentServer(payments domain.PaymentService) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := middleware.NewAuth("test-secret", time.Hour)

	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Use(auth.Authenticate())

	h := New(nil, nil, nil, nil, payments, nil, nil, auth, logger)
	h.RegisterRoutes(e, nil)
	return e
}

func bearerFor(t *testing.T, role string) string {
	t.Helper()

	auth := middleware.NewAuth("test-secret", time.Hour)
	token, err := auth.IssueToken(&domain.User{
		ID: "22222222-2222-2222-2222-222222222222", Username: "ada",
		Email: "ada@example.com", Role: role,
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestCreatePayment_RecordsAndFlipsOrder(t *testing.T) {
	payments := &stubPaymentService{payment: &domain.Payment{
		ID:       "pay-1",
		OrderID:  "ord-1",
		Provider: "manual",
		Amount:   decimal.RequireFromString("20.20"),
		Currency: "USD",
		Status:   domain.PaymentStatusSucceeded,
	}}
	e := newPaymentServer(payments)

	req := httptest.NewRequest(http.MethodPost, "/api/payments",
		strings.NewReader(`{"order_id":"ord-1","provider":"manual","provider_reference":"wire-77","amount":"20.20","currency":"USD"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, domain.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, payments.recorded)
	assert.Equal(t, "ord-1", payments.recorded.OrderID)
	assert.Equal(t, "wire-77", payments.recorded.ProviderReference)
	assert.True(t, payments.recorded.Amount.Equal(decimal.RequireFromString("20.20")))
	assert.Equal(t, domain.PaymentStatusSucceeded, payments.recorded.Status, "omitted status defaults to SUCCEEDED")

	var body paymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pay-1", body.ID)
	assert.Equal(t, "20.20", body.Amount)
}

func TestCreatePayment_ExplicitFailedStatus(t *testing.T) {
	payments := &stubPaymentService{payment: &domain.Payment{ID: "pay-2", Status: domain.PaymentStatusFailed}}
	e := newPaymentServer(payments)

	req := httptest.NewRequest(http.MethodPost, "/api/payments",
		strings.NewReader(`{"order_id":"ord-1","provider":"manual","amount":"5.00","currency":"USD","status":"FAILED"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, domain.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, payments.recorded)
	assert.Equal(t, domain.PaymentStatusFailed, payments.recorded.Status)
}

func TestCreatePayment_InvalidAmount(t *testing.T) {
	payments := &stubPaymentService{}
	e := newPaymentServer(payments)

	req := httptest.NewRequest(http.MethodPost, "/api/payments",
		strings.NewReader(`{"order_id":"ord-1","provider":"manual","amount":"twenty","currency":"USD"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, domain.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, payments.recorded, "nothing may be recorded for an unparseable amount")
}

func TestCreatePayment_AdminOnly(t *testing.T) {
	payments := &stubPaymentService{}
	e := newPaymentServer(payments)

	body := `{"order_id":"ord-1","provider":"manual","amount":"5.00","currency":"USD"}`

	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, domain.RoleUser))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	assert.Nil(t, payments.recorded)
}
