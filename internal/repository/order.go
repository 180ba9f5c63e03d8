package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CreateOrderParams struct {
	CustomerName  string
	CustomerEmail string
	Currency      string
	Status        string
	TotalAmount   decimal.Decimal
	Items         []CreateOrderItemParams
}

type CreateOrderItemParams struct {
	ProductID   pgtype.UUID
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
}

const insertOrder = `
INSERT INTO orders (customer_name, customer_email, currency, status, total_amount)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, customer_name, customer_email, currency, status, total_amount, created_at, updated_at
`

const insertOrderItem = `
INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, order_id, product_id, product_name, quantity, unit_price, created_at
`

// CreateOrderWithItems persists an order and all of its lines in a single
// transaction; a failing line insert rolls back the order row.
func (q *Queries) CreateOrderWithItems(ctx context.Context, arg CreateOrderParams) (Order, []OrderItem, error) {
	tx, err := q.db.Begin(ctx)
	if err != nil {
		return Order{}, nil, err
	}
	defer tx.Rollback(ctx)

	order, err := scanOrder(tx.QueryRow(ctx, insertOrder,
		arg.CustomerName, arg.CustomerEmail, arg.Currency, arg.Status, DecimalToNumeric(arg.TotalAmount)))
	if err != nil {
		return Order{}, nil, err
	}

	items := make([]OrderItem, 0, len(arg.Items))
	for _, it := range arg.Items {
		row := tx.QueryRow(ctx, insertOrderItem,
			order.ID, it.ProductID, it.ProductName, it.Quantity, DecimalToNumeric(it.UnitPrice))
		item, err := scanOrderItem(row)
		if err != nil {
			return Order{}, nil, err
		}
		items = append(items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, nil, err
	}
	return order, items, nil
}

const getOrderByID = `
SELECT id, customer_name, customer_email, currency, status, total_amount, created_at, updated_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, id pgtype.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderByID, id))
}

const getOrderItems = `
SELECT id, order_id, product_id, product_name, quantity, unit_price, created_at
FROM order_items
WHERE order_id = $1
ORDER BY created_at, id
`

func (q *Queries) GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, getOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const listOrders = `
SELECT id, customer_name, customer_email, currency, status, total_amount, created_at, updated_at
FROM orders
ORDER BY created_at DESC, id
`

func (q *Queries) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

type UpdateOrderStatusParams struct {
	ID     pgtype.UUID
	Status string
}

const updateOrderStatus = `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateOrderStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	var total pgtype.Numeric
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.Currency, &o.Status, &total, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	o.TotalAmount = NumericToDecimal(total)
	return o, nil
}

func scanOrderItem(row rowScanner) (OrderItem, error) {
	var item OrderItem
	var price pgtype.Numeric
	err := row.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &price, &item.CreatedAt)
	if err != nil {
		return OrderItem{}, err
	}
	item.UnitPrice = NumericToDecimal(price)
	return item, nil
}
