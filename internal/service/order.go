package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/repository"
)

type orderService struct {
	queries repository.Querier
	logger  *slog.Logger
}

// NewOrderService creates an order service.
func NewOrderService(queries repository.Querier, logger *slog.Logger) domain.OrderService {
	return &orderService{queries: queries, logger: logger}
}

// CreateFromItems resolves the requested products against the catalog and
// persists the order atomically. Any resolution or validation failure means
// nothing is persisted.
func (s *orderService) CreateFromItems(ctx context.Context, params domain.CreateOrderParams) (*domain.Order, error) {
	const op = "order.create"

	if len(params.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	currency := domain.NormalizeCurrency(params.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	items := make([]repository.CreateOrderItemParams, 0, len(params.Items))
	total := decimal.Zero
	for _, req := range params.Items {
		if req.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		pid, err := parseID(op, "product", req.ProductID)
		if err != nil {
			return nil, err
		}
		product, err := s.queries.GetProductByID(ctx, pid)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.NotFound(op, "product", req.ProductID)
			}
			return nil, domain.Internal(err, op, "failed to resolve product")
		}
		if !domain.SameCurrency(product.Currency, currency) {
			return nil, domain.Errorf(domain.EINVALID, op,
				"currency mismatch for product %s: order is %s, product is %s",
				req.ProductID, currency, product.Currency)
		}

		items = append(items, repository.CreateOrderItemParams{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   product.Price,
		})
		total = total.Add(domain.LineTotal(product.Price, req.Quantity))
	}

	row, lineRows, err := s.queries.CreateOrderWithItems(ctx, repository.CreateOrderParams{
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		Currency:      currency,
		Status:        string(domain.OrderStatusCreated),
		TotalAmount:   total,
		Items:         items,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create order")
	}

	order := assembleOrder(row, lineRows)
	s.logger.Info("order created",
		"order_id", order.ID,
		"total", domain.AmountString(order.TotalAmount),
		"currency", order.Currency,
		"lines", len(order.Lines))
	return order, nil
}

// CreateFromCart freezes the cart's current lines into an order using the
// snapshotted unit prices verbatim. A non-nil TotalOverride pins the order
// total to the amount agreed with the payment provider.
func (s *orderService) CreateFromCart(ctx context.Context, cart *domain.CartSummary, params domain.CreateFromCartParams) (*domain.Order, error) {
	const op = "order.create_from_cart"

	if cart == nil || len(cart.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	status := params.Status
	if status == "" {
		status = domain.OrderStatusCreated
	}
	if !status.Valid() {
		return nil, domain.Invalid(op, "invalid order status")
	}

	currency := domain.NormalizeCurrency(params.Currency)
	if currency == "" {
		currency = domain.NormalizeCurrency(cart.Currency)
	}

	items := make([]repository.CreateOrderItemParams, 0, len(cart.Lines))
	total := decimal.Zero
	for _, line := range cart.Lines {
		pid, err := parseID(op, "product", line.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, repository.CreateOrderItemParams{
			ProductID:   pid,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
		total = total.Add(domain.LineTotal(line.UnitPrice, line.Quantity))
	}
	if params.TotalOverride != nil {
		total = *params.TotalOverride
	}

	row, lineRows, err := s.queries.CreateOrderWithItems(ctx, repository.CreateOrderParams{
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		Currency:      currency,
		Status:        string(status),
		TotalAmount:   total,
		Items:         items,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create order")
	}

	order := assembleOrder(row, lineRows)
	s.logger.Info("order created from cart",
		"order_id", order.ID,
		"cart_id", cart.Cart.ID,
		"total", domain.AmountString(order.TotalAmount),
		"currency", order.Currency)
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	const op = "order.get"

	id, err := parseID(op, "order", orderID)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.Internal(err, op, "failed to get order")
	}

	lineRows, err := s.queries.GetOrderItems(ctx, id)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load order items")
	}
	return assembleOrder(row, lineRows), nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "order.list"

	rows, err := s.queries.ListOrders(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list orders")
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, *orderFromRow(row))
	}
	return orders, nil
}

func assembleOrder(row repository.Order, lineRows []repository.OrderItem) *domain.Order {
	order := orderFromRow(row)
	order.Lines = make([]domain.OrderLine, 0, len(lineRows))
	for _, lr := range lineRows {
		order.Lines = append(order.Lines, orderLineFromRow(lr))
	}
	return order
}
