// Package repository is the PostgreSQL data access layer. Query methods are
// grouped per aggregate (users, products, carts, orders, payments) and
// exposed through the Querier interface so services can be tested against
// hand-written mocks.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DB is the subset of pgxpool.Pool (and pgx.Tx) the queries need.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Querier is the full query surface consumed by the service layer.
type Querier interface {
	// Users
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id pgtype.UUID) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)

	// Products
	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	GetProductByID(ctx context.Context, id pgtype.UUID) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error)
	DeleteProduct(ctx context.Context, id pgtype.UUID) (int64, error)
	CountProducts(ctx context.Context) (int64, error)

	// Carts
	CreateCart(ctx context.Context, userID pgtype.UUID) (Cart, error)
	GetCartByID(ctx context.Context, id pgtype.UUID) (Cart, error)
	GetCartByUserID(ctx context.Context, userID pgtype.UUID) (Cart, error)
	DeleteCart(ctx context.Context, id pgtype.UUID) (int64, error)
	UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (CartItem, error)
	GetCartItems(ctx context.Context, cartID pgtype.UUID) ([]GetCartItemsRow, error)
	UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) (int64, error)
	RemoveCartItem(ctx context.Context, arg RemoveCartItemParams) (int64, error)

	// Orders
	CreateOrderWithItems(ctx context.Context, arg CreateOrderParams) (Order, []OrderItem, error)
	GetOrderByID(ctx context.Context, id pgtype.UUID) (Order, error)
	GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error)
	ListOrders(ctx context.Context) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (int64, error)

	// Payments
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	GetPaymentByID(ctx context.Context, id pgtype.UUID) (Payment, error)
	ListPayments(ctx context.Context) ([]Payment, error)

	// Contact
	CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (ContactMessage, error)
}

// Queries implements Querier over a pgx pool or transaction.
type Queries struct {
	db DB
}

// Compile-time check that Queries implements Querier.
var _ Querier = (*Queries)(nil)

// New creates a Queries instance backed by the given pool.
func New(db DB) *Queries {
	return &Queries{db: db}
}
