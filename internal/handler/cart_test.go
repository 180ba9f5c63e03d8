package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeop/store/internal/domain"
)

// recordingCartService implements domain.CartService and captures the
// arguments of the last call per operation.
type recordingCartService struct {
	summary *domain.CartSummary
	err     error

	lastUserID    string
	lastCartID    string
	lastProductID string
	lastItemID    string
	lastQuantity  int32
}

func (s *recordingCartService) GetOrCreateForUser(ctx context.Context, userID string) (*domain.CartSummary, error) {
	s.lastUserID = userID
	return s.summary, s.err
}

func (s *recordingCartService) CreateCart(ctx context.Context) (*domain.CartSummary, error) {
	return s.summary, s.err
}

func (s *recordingCartService) GetCart(ctx context.Context, cartID string) (*domain.CartSummary, error) {
	s.lastCartID = cartID
	return s.summary, s.err
}

func (s *recordingCartService) AddItem(ctx context.Context, cartID, productID string, quantity int32) (*domain.CartSummary, error) {
	s.lastCartID = cartID
	s.lastProductID = productID
	s.lastQuantity = quantity
	return s.summary, s.err
}

func (s *recordingCartService) UpdateItem(ctx context.Context, cartID, lineID string, quantity int32) (*domain.CartSummary, error) {
	s.lastCartID = cartID
	s.lastItemID = lineID
	s.lastQuantity = quantity
	return s.summary, s.err
}

func (s *recordingCartService) RemoveItem(ctx context.Context, cartID, lineID string) (*domain.CartSummary, error) {
	s.lastCartID = cartID
	s.lastItemID = lineID
	return s.summary, s.err
}

func (s *recordingCartService) DeleteCart(ctx context.Context, cartID string) error {
	s.lastCartID = cartID
	return s.err
}

func TestAddMyCartItem_ResolvesOwnCart(t *testing.T) {
	carts := &recordingCartService{summary: checkoutSummary()}
	e := newTestServer(carts, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/me/cart/items",
		strings.NewReader(`{"product_id":"p1","quantity":2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, domain.RoleUser))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", carts.lastUserID,
		"cart must be resolved from the authenticated principal")
	assert.Equal(t, testCartID, carts.lastCartID)
	assert.Equal(t, "p1", carts.lastProductID)
	assert.Equal(t, int32(2), carts.lastQuantity)
}

func TestUpdateMyCartItem_RoutesToOwnCart(t *testing.T) {
	carts := &recordingCartService{summary: checkoutSummary()}
	e := newTestServer(carts, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/me/cart/items/l1",
		strings.NewReader(`{"quantity":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, domain.RoleUser))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, testCartID, carts.lastCartID)
	assert.Equal(t, "l1", carts.lastItemID)
	assert.Equal(t, int32(3), carts.lastQuantity)
}

func TestRemoveMyCartItem_RoutesToOwnCart(t *testing.T) {
	carts := &recordingCartService{summary: checkoutSummary()}
	e := newTestServer(carts, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/me/cart/items/l1", nil)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, domain.RoleUser))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, testCartID, carts.lastCartID)
	assert.Equal(t, "l1", carts.lastItemID)
}

func TestMyCartItems_RequireAuthentication(t *testing.T) {
	carts := &recordingCartService{summary: checkoutSummary()}
	e := newTestServer(carts, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/me/cart/items",
		strings.NewReader(`{"product_id":"p1","quantity":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, carts.lastUserID)
}
