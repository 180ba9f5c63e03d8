package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// CreateCart inserts a cart. For an owned cart (userID valid) the insert
// races against the partial unique index on carts.user_id: on conflict no
// row is returned (pgx.ErrNoRows) and the caller re-reads the winner's cart.
const createCart = `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) WHERE user_id IS NOT NULL DO NOTHING
RETURNING id, user_id, created_at, updated_at
`

func (q *Queries) CreateCart(ctx context.Context, userID pgtype.UUID) (Cart, error) {
	return scanCart(q.db.QueryRow(ctx, createCart, userID))
}

const getCartByID = `
SELECT id, user_id, created_at, updated_at
FROM carts
WHERE id = $1
`

func (q *Queries) GetCartByID(ctx context.Context, id pgtype.UUID) (Cart, error) {
	return scanCart(q.db.QueryRow(ctx, getCartByID, id))
}

const getCartByUserID = `
SELECT id, user_id, created_at, updated_at
FROM carts
WHERE user_id = $1
`

func (q *Queries) GetCartByUserID(ctx context.Context, userID pgtype.UUID) (Cart, error) {
	return scanCart(q.db.QueryRow(ctx, getCartByUserID, userID))
}

const deleteCart = `
DELETE FROM carts
WHERE id = $1
`

func (q *Queries) DeleteCart(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteCart, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UpsertCartItemParams struct {
	CartID    pgtype.UUID
	ProductID pgtype.UUID
	Quantity  int32
	UnitPrice decimal.Decimal
	Currency  string
}

// UpsertCartItem appends a line or merges quantity into the existing line
// for the same product. The snapshotted unit price of the existing line is
// kept; re-adding never re-prices.
const upsertCartItem = `
INSERT INTO cart_items (cart_id, product_id, quantity, unit_price, currency)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
RETURNING id, cart_id, product_id, quantity, unit_price, currency, created_at
`

func (q *Queries) UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, upsertCartItem,
		arg.CartID, arg.ProductID, arg.Quantity, DecimalToNumeric(arg.UnitPrice), arg.Currency)

	var item CartItem
	var price pgtype.Numeric
	err := row.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &price, &item.Currency, &item.CreatedAt)
	if err != nil {
		return CartItem{}, err
	}
	item.UnitPrice = NumericToDecimal(price)
	return item, nil
}

const getCartItems = `
SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.unit_price, ci.currency,
       p.name AS product_name, p.image_url
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at, ci.id
`

func (q *Queries) GetCartItems(ctx context.Context, cartID pgtype.UUID) ([]GetCartItemsRow, error) {
	rows, err := q.db.Query(ctx, getCartItems, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetCartItemsRow
	for rows.Next() {
		var item GetCartItemsRow
		var price pgtype.Numeric
		err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &price,
			&item.Currency, &item.ProductName, &item.ImageUrl)
		if err != nil {
			return nil, err
		}
		item.UnitPrice = NumericToDecimal(price)
		items = append(items, item)
	}
	return items, rows.Err()
}

type UpdateCartItemQuantityParams struct {
	CartID   pgtype.UUID
	ItemID   pgtype.UUID
	Quantity int32
}

const updateCartItemQuantity = `
UPDATE cart_items
SET quantity = $3
WHERE id = $2 AND cart_id = $1
`

func (q *Queries) UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateCartItemQuantity, arg.CartID, arg.ItemID, arg.Quantity)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type RemoveCartItemParams struct {
	CartID pgtype.UUID
	ItemID pgtype.UUID
}

const removeCartItem = `
DELETE FROM cart_items
WHERE id = $2 AND cart_id = $1
`

func (q *Queries) RemoveCartItem(ctx context.Context, arg RemoveCartItemParams) (int64, error) {
	tag, err := q.db.Exec(ctx, removeCartItem, arg.CartID, arg.ItemID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanCart(row rowScanner) (Cart, error) {
	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
