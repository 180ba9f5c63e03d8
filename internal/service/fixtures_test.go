package service

import (
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/codeop/store/internal/repository"
)

const (
	testCartID    = "11111111-1111-1111-1111-111111111111"
	testUserID    = "22222222-2222-2222-2222-222222222222"
	testProductID = "33333333-3333-3333-3333-333333333333"
	testOrderID   = "44444444-4444-4444-4444-444444444444"
	testPaymentID = "55555555-5555-5555-5555-555555555555"
	testLineID    = "66666666-6666-6666-6666-666666666666"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustUUID(id string) pgtype.UUID {
	u, err := repository.ScanUUID(id)
	if err != nil {
		panic(err)
	}
	return u
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func makeProductRow(id, name, price, currency string) repository.Product {
	return repository.Product{
		ID:       mustUUID(id),
		Name:     name,
		Price:    dec(price),
		Currency: currency,
	}
}

func makeCartRow(id string) repository.Cart {
	return repository.Cart{ID: mustUUID(id)}
}

func makeCartItemRow(lineID, productID, name, price, currency string, qty int32) repository.GetCartItemsRow {
	return repository.GetCartItemsRow{
		ID:          mustUUID(lineID),
		CartID:      mustUUID(testCartID),
		ProductID:   mustUUID(productID),
		Quantity:    qty,
		UnitPrice:   dec(price),
		Currency:    currency,
		ProductName: name,
	}
}
