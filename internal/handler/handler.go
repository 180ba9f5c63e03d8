// Package handler exposes the HTTP API. Handlers bind and validate
// requests, delegate to the domain services and render JSON responses; all
// error rendering goes through the central error handler.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/middleware"
)

// Handler carries the service dependencies for all routes.
type Handler struct {
	users    domain.UserService
	products domain.ProductService
	carts    domain.CartService
	orders   domain.OrderService
	payments domain.PaymentService
	checkout domain.CheckoutService
	contact  domain.ContactService
	auth     *middleware.Auth
	logger   *slog.Logger
}

// New creates the API handler.
func New(
	users domain.UserService,
	products domain.ProductService,
	carts domain.CartService,
	orders domain.OrderService,
	payments domain.PaymentService,
	checkout domain.CheckoutService,
	contact domain.ContactService,
	auth *middleware.Auth,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		users:    users,
		products: products,
		carts:    carts,
		orders:   orders,
		payments: payments,
		checkout: checkout,
		contact:  contact,
		auth:     auth,
		logger:   logger,
	}
}

// RegisterRoutes wires all routes onto the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo, metrics *middleware.Metrics) {
	e.GET("/healthz", h.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	api := e.Group("/api")

	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/me", h.Me, middleware.Require())

	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products", h.CreateProduct, middleware.RequireAdmin())
	api.PUT("/products/:id", h.UpdateProduct, middleware.RequireAdmin())
	api.DELETE("/products/:id", h.DeleteProduct, middleware.RequireAdmin())

	api.POST("/carts", h.CreateCart)
	api.GET("/carts/:id", h.GetCart)
	api.POST("/carts/:id/items", h.AddCartItem)
	api.PATCH("/carts/:id/items/:itemID", h.UpdateCartItem)
	api.DELETE("/carts/:id/items/:itemID", h.RemoveCartItem)
	api.GET("/me/cart", h.MyCart, middleware.Require())
	api.POST("/me/cart/items", h.AddMyCartItem, middleware.Require())
	api.PATCH("/me/cart/items/:itemID", h.UpdateMyCartItem, middleware.Require())
	api.DELETE("/me/cart/items/:itemID", h.RemoveMyCartItem, middleware.Require())

	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.ListOrders, middleware.RequireAdmin())
	api.GET("/orders/:id", h.GetOrder)

	api.GET("/payments", h.ListPayments, middleware.RequireAdmin())
	api.POST("/payments", h.CreatePayment, middleware.RequireAdmin())
	api.GET("/payments/:id", h.GetPayment)

	api.POST("/paypal/orders", h.CreatePayPalOrder)
	api.POST("/paypal/orders/:id/capture", h.CapturePayPalOrder)

	api.POST("/contact", h.SubmitContact)
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
