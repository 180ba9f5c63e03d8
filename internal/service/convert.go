// Package service implements the business logic behind the domain service
// interfaces. Each service wraps the repository Querier and translates
// storage rows and errors into domain types.
package service

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/repository"
)

// parseID converts a string id into a pgtype.UUID, returning a validation
// error naming the resource when the id is malformed.
func parseID(op, resource, id string) (pgtype.UUID, error) {
	uid, err := repository.ScanUUID(id)
	if err != nil {
		return pgtype.UUID{}, domain.Invalid(op, "invalid "+resource+" id")
	}
	return uid, nil
}

func userFromRow(row repository.User) *domain.User {
	return &domain.User{
		ID:        repository.UUIDString(row.ID),
		Username:  row.Username,
		Email:     row.Email,
		Role:      row.Role,
		CreatedAt: row.CreatedAt.Time,
	}
}

func productFromRow(row repository.Product) *domain.Product {
	return &domain.Product{
		ID:          repository.UUIDString(row.ID),
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Currency:    row.Currency,
		ImageURL:    row.ImageUrl,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func cartFromRow(row repository.Cart) domain.Cart {
	return domain.Cart{
		ID:        repository.UUIDString(row.ID),
		UserID:    repository.UUIDString(row.UserID),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func cartLineFromRow(row repository.GetCartItemsRow) domain.CartLine {
	return domain.CartLine{
		ID:          repository.UUIDString(row.ID),
		ProductID:   repository.UUIDString(row.ProductID),
		ProductName: row.ProductName,
		ImageURL:    row.ImageUrl,
		Quantity:    row.Quantity,
		UnitPrice:   row.UnitPrice,
		Currency:    row.Currency,
		LineTotal:   domain.LineTotal(row.UnitPrice, row.Quantity),
	}
}

func orderFromRow(row repository.Order) *domain.Order {
	return &domain.Order{
		ID:            repository.UUIDString(row.ID),
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		Currency:      row.Currency,
		Status:        domain.OrderStatus(row.Status),
		TotalAmount:   row.TotalAmount,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func orderLineFromRow(row repository.OrderItem) domain.OrderLine {
	return domain.OrderLine{
		ID:          repository.UUIDString(row.ID),
		ProductID:   repository.UUIDString(row.ProductID),
		ProductName: row.ProductName,
		Quantity:    row.Quantity,
		UnitPrice:   row.UnitPrice,
		LineTotal:   domain.LineTotal(row.UnitPrice, row.Quantity),
	}
}

func paymentFromRow(row repository.Payment) *domain.Payment {
	return &domain.Payment{
		ID:                repository.UUIDString(row.ID),
		OrderID:           repository.UUIDString(row.OrderID),
		Provider:          row.Provider,
		ProviderReference: row.ProviderReference,
		Amount:            row.Amount,
		Currency:          row.Currency,
		Status:            domain.PaymentStatus(row.Status),
		CreatedAt:         row.CreatedAt.Time,
	}
}
