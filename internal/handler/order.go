package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeop/store/internal/domain"
)

type createOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required"`
	CustomerEmail string             `json:"customer_email" validate:"required,email"`
	Currency      string             `json:"currency"`
	Items         []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int32  `json:"quantity" validate:"required,gt=0"`
}

// CreateOrder creates an order directly from a list of product ids, outside
// the payment flow.
func (h *Handler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	items := make([]domain.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItemRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orders.CreateFromItems(c.Request().Context(), domain.CreateOrderParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Currency:      req.Currency,
		Items:         items,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *Handler) GetOrder(c echo.Context) error {
	order, err := h.orders.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
