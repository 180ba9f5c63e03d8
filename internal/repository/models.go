package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           pgtype.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    pgtype.Timestamptz
}

type Product struct {
	ID          pgtype.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	ImageUrl    string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Cart struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type CartItem struct {
	ID        pgtype.UUID
	CartID    pgtype.UUID
	ProductID pgtype.UUID
	Quantity  int32
	UnitPrice decimal.Decimal
	Currency  string
	CreatedAt pgtype.Timestamptz
}

// GetCartItemsRow joins cart lines with product display fields.
type GetCartItemsRow struct {
	ID          pgtype.UUID
	CartID      pgtype.UUID
	ProductID   pgtype.UUID
	Quantity    int32
	UnitPrice   decimal.Decimal
	Currency    string
	ProductName string
	ImageUrl    string
}

type Order struct {
	ID            pgtype.UUID
	CustomerName  string
	CustomerEmail string
	Currency      string
	Status        string
	TotalAmount   decimal.Decimal
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type OrderItem struct {
	ID          pgtype.UUID
	OrderID     pgtype.UUID
	ProductID   pgtype.UUID
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
	CreatedAt   pgtype.Timestamptz
}

type Payment struct {
	ID                pgtype.UUID
	OrderID           pgtype.UUID
	Provider          string
	ProviderReference string
	Amount            decimal.Decimal
	Currency          string
	Status            string
	CreatedAt         pgtype.Timestamptz
}

type ContactMessage struct {
	ID        pgtype.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt pgtype.Timestamptz
}
