package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeop/store/internal/middleware"
)

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int32  `json:"quantity" validate:"required,gt=0"`
}

type updateItemRequest struct {
	Quantity int32 `json:"quantity" validate:"required,gt=0"`
}

// CreateCart opens an anonymous cart.
func (h *Handler) CreateCart(c echo.Context) error {
	summary, err := h.carts.CreateCart(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCartResponse(summary))
}

// MyCart returns the authenticated user's cart, creating it on first
// access.
func (h *Handler) MyCart(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)

	summary, err := h.carts.GetOrCreateForUser(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(summary))
}

// myCartID resolves the authenticated caller's cart, creating it on first
// access, so the /me/cart/items routes never need a client-known cart id.
func (h *Handler) myCartID(c echo.Context) (string, error) {
	principal := middleware.PrincipalFrom(c)

	summary, err := h.carts.GetOrCreateForUser(c.Request().Context(), principal.UserID)
	if err != nil {
		return "", err
	}
	return summary.Cart.ID, nil
}

func (h *Handler) AddMyCartItem(c echo.Context) error {
	var req addItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cartID, err := h.myCartID(c)
	if err != nil {
		return err
	}

	summary, err := h.carts.AddItem(c.Request().Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(summary))
}

func (h *Handler) UpdateMyCartItem(c echo.Context) error {
	var req updateItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cartID, err := h.myCartID(c)
	if err != nil {
		return err
	}

	summary, err := h.carts.UpdateItem(c.Request().Context(), cartID, c.Param("itemID"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(summary))
}

func (h *Handler) RemoveMyCartItem(c echo.Context) error {
	cartID, err := h.myCartID(c)
	if err != nil {
		return err
	}

	summary, err := h.carts.RemoveItem(c.Request().Context(), cartID, c.Param("itemID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(summary))
}

func (h *Handler) GetCart(c echo.Context) error {
	summary, err := h.carts.GetCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(summary))
}

func (h *Handler) AddCartItem(c echo.Context) error {
	var req addItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	summary, err := h.carts.AddItem(c.Request().Context(), c.Param("id"), req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(summary))
}

func (h *Handler) UpdateCartItem(c echo.Context) error {
	var req updateItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	summary, err := h.carts.UpdateItem(c.Request().Context(), c.Param("id"), c.Param("itemID"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(summary))
}

func (h *Handler) RemoveCartItem(c echo.Context) error {
	summary, err := h.carts.RemoveItem(c.Request().Context(), c.Param("id"), c.Param("itemID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(summary))
}
