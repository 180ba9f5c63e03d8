package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/repository"
)

func TestCartService_AddItem_SnapshotsPriceAndMergesQuantity(t *testing.T) {
	var upserted *repository.UpsertCartItemParams
	mock := &mockQuerier{
		GetCartByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Cart, error) {
			return makeCartRow(testCartID), nil
		},
		GetProductByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Product, error) {
			return makeProductRow(testProductID, "Lavender Soap", "8.90", "USD"), nil
		},
		UpsertCartItemFunc: func(ctx context.Context, arg repository.UpsertCartItemParams) (repository.CartItem, error) {
			upserted = &arg
			return repository.CartItem{}, nil
		},
		GetCartItemsFunc: func(ctx context.Context, cartID pgtype.UUID) ([]repository.GetCartItemsRow, error) {
			return []repository.GetCartItemsRow{
				makeCartItemRow(testLineID, testProductID, "Lavender Soap", "8.90", "USD", 3),
			}, nil
		},
	}
	svc := NewCartService(mock, testLogger())

	summary, err := svc.AddItem(context.Background(), testCartID, testProductID, 2)

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.True(t, upserted.UnitPrice.Equal(dec("8.90")), "unit price must come from the catalog snapshot")
	assert.Equal(t, "USD", upserted.Currency)
	assert.Equal(t, int32(2), upserted.Quantity)
	require.Len(t, summary.Lines, 1)
	assert.True(t, summary.Total.Equal(dec("26.70")))
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc := NewCartService(&mockQuerier{}, testLogger())

	_, err := svc.AddItem(context.Background(), testCartID, testProductID, 0)

	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	mock := &mockQuerier{
		GetCartByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Cart, error) {
			return makeCartRow(testCartID), nil
		},
	}
	svc := NewCartService(mock, testLogger())

	_, err := svc.AddItem(context.Background(), testCartID, testProductID, 1)

	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestCartService_GetCart_ComputesTotalsAndCurrency(t *testing.T) {
	mock := &mockQuerier{
		GetCartByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Cart, error) {
			return makeCartRow(testCartID), nil
		},
		GetCartItemsFunc: func(ctx context.Context, cartID pgtype.UUID) ([]repository.GetCartItemsRow, error) {
			return []repository.GetCartItemsRow{
				makeCartItemRow(testLineID, testProductID, "Lavender Soap", "8.90", "EUR", 2),
				makeCartItemRow(testOrderID, testPaymentID, "Bamboo Toothbrush", "2.40", "EUR", 1),
			}, nil
		},
	}
	svc := NewCartService(mock, testLogger())

	summary, err := svc.GetCart(context.Background(), testCartID)

	require.NoError(t, err)
	assert.Equal(t, "EUR", summary.Currency, "cart currency follows the first line")
	assert.True(t, summary.Total.Equal(dec("20.20")))
	assert.True(t, summary.Lines[0].LineTotal.Equal(dec("17.80")))
}

func TestCartService_GetCart_EmptyCartDefaultsCurrency(t *testing.T) {
	mock := &mockQuerier{
		GetCartByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Cart, error) {
			return makeCartRow(testCartID), nil
		},
	}
	svc := NewCartService(mock, testLogger())

	summary, err := svc.GetCart(context.Background(), testCartID)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, summary.Currency)
	assert.True(t, summary.Total.IsZero())
	assert.Empty(t, summary.Lines)
}

func TestCartService_GetCart_NotFound(t *testing.T) {
	svc := NewCartService(&mockQuerier{}, testLogger())

	_, err := svc.GetCart(context.Background(), testCartID)

	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestCartService_UpdateItem_MissingLine(t *testing.T) {
	mock := &mockQuerier{
		GetCartByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Cart, error) {
			return makeCartRow(testCartID), nil
		},
		UpdateCartItemQuantityFunc: func(ctx context.Context, arg repository.UpdateCartItemQuantityParams) (int64, error) {
			return 0, nil
		},
	}
	svc := NewCartService(mock, testLogger())

	_, err := svc.UpdateItem(context.Background(), testCartID, testLineID, 5)

	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestCartService_RemoveItem_MissingLine(t *testing.T) {
	mock := &mockQuerier{
		GetCartByIDFunc: func(ctx context.Context, id pgtype.UUID) (repository.Cart, error) {
			return makeCartRow(testCartID), nil
		},
		RemoveCartItemFunc: func(ctx context.Context, arg repository.RemoveCartItemParams) (int64, error) {
			return 0, nil
		},
	}
	svc := NewCartService(mock, testLogger())

	_, err := svc.RemoveItem(context.Background(), testCartID, testLineID)

	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestCartService_GetOrCreateForUser_ReturnsExistingCart(t *testing.T) {
	created := false
	mock := &mockQuerier{
		GetCartByUserIDFunc: func(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
			return makeCartRow(testCartID), nil
		},
		CreateCartFunc: func(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
			created = true
			return repository.Cart{}, nil
		},
	}
	svc := NewCartService(mock, testLogger())

	summary, err := svc.GetOrCreateForUser(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, testCartID, summary.Cart.ID)
	assert.False(t, created, "existing cart must be reused")
}

func TestCartService_GetOrCreateForUser_LosesInsertRace(t *testing.T) {
	// First read misses, the insert hits the unique index, the re-read
	// returns the concurrent winner's cart.
	reads := 0
	mock := &mockQuerier{
		GetCartByUserIDFunc: func(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
			reads++
			if reads == 1 {
				return repository.Cart{}, pgx.ErrNoRows
			}
			return makeCartRow(testCartID), nil
		},
		CreateCartFunc: func(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
			return repository.Cart{}, pgx.ErrNoRows
		},
	}
	svc := NewCartService(mock, testLogger())

	summary, err := svc.GetOrCreateForUser(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, testCartID, summary.Cart.ID)
	assert.Equal(t, 2, reads)
}
