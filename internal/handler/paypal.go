package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/middleware"
)

type createPayPalOrderRequest struct {
	CartID string `json:"cart_id" validate:"required"`
}

// CreatePayPalOrder opens a payment intent for a cart. The amount is the
// cart's server-side total at this moment; it is what the provider will
// capture regardless of later cart edits.
func (h *Handler) CreatePayPalOrder(c echo.Context) error {
	var req createPayPalOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	summary, err := h.carts.GetCart(ctx, req.CartID)
	if err != nil {
		return err
	}
	if len(summary.Lines) == 0 {
		return domain.Invalid("checkout.create_intent", "Cart is empty")
	}

	order, err := h.checkout.CreateIntent(ctx, req.CartID, summary.Total, summary.Currency)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toGatewayOrderResponse(order))
}

// CapturePayPalOrder finalizes a previously created intent and reconciles
// it into a paid order.
func (h *Handler) CapturePayPalOrder(c echo.Context) error {
	order, err := h.checkout.CaptureIntent(c.Request().Context(), c.Param("id"), middleware.PrincipalFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGatewayOrderResponse(order))
}
