package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/codeop/store/internal/repository"
)

// mockQuerier implements repository.Querier for testing. Each method
// delegates to the corresponding Func field when set; reads default to
// pgx.ErrNoRows and writes to a not-implemented error.
type mockQuerier struct {
	CreateUserFunc        func(ctx context.Context, arg repository.CreateUserParams) (repository.User, error)
	GetUserByIDFunc       func(ctx context.Context, id pgtype.UUID) (repository.User, error)
	GetUserByUsernameFunc func(ctx context.Context, username string) (repository.User, error)

	CreateProductFunc  func(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error)
	GetProductByIDFunc func(ctx context.Context, id pgtype.UUID) (repository.Product, error)
	ListProductsFunc   func(ctx context.Context) ([]repository.Product, error)
	UpdateProductFunc  func(ctx context.Context, arg repository.UpdateProductParams) (repository.Product, error)
	DeleteProductFunc  func(ctx context.Context, id pgtype.UUID) (int64, error)
	CountProductsFunc  func(ctx context.Context) (int64, error)

	CreateCartFunc             func(ctx context.Context, userID pgtype.UUID) (repository.Cart, error)
	GetCartByIDFunc            func(ctx context.Context, id pgtype.UUID) (repository.Cart, error)
	GetCartByUserIDFunc        func(ctx context.Context, userID pgtype.UUID) (repository.Cart, error)
	DeleteCartFunc             func(ctx context.Context, id pgtype.UUID) (int64, error)
	UpsertCartItemFunc         func(ctx context.Context, arg repository.UpsertCartItemParams) (repository.CartItem, error)
	GetCartItemsFunc           func(ctx context.Context, cartID pgtype.UUID) ([]repository.GetCartItemsRow, error)
	UpdateCartItemQuantityFunc func(ctx context.Context, arg repository.UpdateCartItemQuantityParams) (int64, error)
	RemoveCartItemFunc         func(ctx context.Context, arg repository.RemoveCartItemParams) (int64, error)

	CreateOrderWithItemsFunc func(ctx context.Context, arg repository.CreateOrderParams) (repository.Order, []repository.OrderItem, error)
	GetOrderByIDFunc         func(ctx context.Context, id pgtype.UUID) (repository.Order, error)
	GetOrderItemsFunc        func(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error)
	ListOrdersFunc           func(ctx context.Context) ([]repository.Order, error)
	UpdateOrderStatusFunc    func(ctx context.Context, arg repository.UpdateOrderStatusParams) (int64, error)

	CreatePaymentFunc  func(ctx context.Context, arg repository.CreatePaymentParams) (repository.Payment, error)
	GetPaymentByIDFunc func(ctx context.Context, id pgtype.UUID) (repository.Payment, error)
	ListPaymentsFunc   func(ctx context.Context) ([]repository.Payment, error)

	CreateContactMessageFunc func(ctx context.Context, arg repository.CreateContactMessageParams) (repository.ContactMessage, error)
}

var errMockNotImplemented = errors.New("not implemented in mock")

func (m *mockQuerier) CreateUser(ctx context.Context, arg repository.CreateUserParams) (repository.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, arg)
	}
	return repository.User{}, errMockNotImplemented
}

func (m *mockQuerier) GetUserByID(ctx context.Context, id pgtype.UUID) (repository.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	return repository.User{}, pgx.ErrNoRows
}

func (m *mockQuerier) GetUserByUsername(ctx context.Context, username string) (repository.User, error) {
	if m.GetUserByUsernameFunc != nil {
		return m.GetUserByUsernameFunc(ctx, username)
	}
	return repository.User{}, pgx.ErrNoRows
}

func (m *mockQuerier) CreateProduct(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, arg)
	}
	return repository.Product{}, errMockNotImplemented
}

func (m *mockQuerier) GetProductByID(ctx context.Context, id pgtype.UUID) (repository.Product, error) {
	if m.GetProductByIDFunc != nil {
		return m.GetProductByIDFunc(ctx, id)
	}
	return repository.Product{}, pgx.ErrNoRows
}

func (m *mockQuerier) ListProducts(ctx context.Context) ([]repository.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuerier) UpdateProduct(ctx context.Context, arg repository.UpdateProductParams) (repository.Product, error) {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, arg)
	}
	return repository.Product{}, pgx.ErrNoRows
}

func (m *mockQuerier) DeleteProduct(ctx context.Context, id pgtype.UUID) (int64, error) {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockQuerier) CountProducts(ctx context.Context) (int64, error) {
	if m.CountProductsFunc != nil {
		return m.CountProductsFunc(ctx)
	}
	return 0, nil
}

func (m *mockQuerier) CreateCart(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
	if m.CreateCartFunc != nil {
		return m.CreateCartFunc(ctx, userID)
	}
	return repository.Cart{}, errMockNotImplemented
}

func (m *mockQuerier) GetCartByID(ctx context.Context, id pgtype.UUID) (repository.Cart, error) {
	if m.GetCartByIDFunc != nil {
		return m.GetCartByIDFunc(ctx, id)
	}
	return repository.Cart{}, pgx.ErrNoRows
}

func (m *mockQuerier) GetCartByUserID(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
	if m.GetCartByUserIDFunc != nil {
		return m.GetCartByUserIDFunc(ctx, userID)
	}
	return repository.Cart{}, pgx.ErrNoRows
}

func (m *mockQuerier) DeleteCart(ctx context.Context, id pgtype.UUID) (int64, error) {
	if m.DeleteCartFunc != nil {
		return m.DeleteCartFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockQuerier) UpsertCartItem(ctx context.Context, arg repository.UpsertCartItemParams) (repository.CartItem, error) {
	if m.UpsertCartItemFunc != nil {
		return m.UpsertCartItemFunc(ctx, arg)
	}
	return repository.CartItem{}, errMockNotImplemented
}

func (m *mockQuerier) GetCartItems(ctx context.Context, cartID pgtype.UUID) ([]repository.GetCartItemsRow, error) {
	if m.GetCartItemsFunc != nil {
		return m.GetCartItemsFunc(ctx, cartID)
	}
	return nil, nil
}

func (m *mockQuerier) UpdateCartItemQuantity(ctx context.Context, arg repository.UpdateCartItemQuantityParams) (int64, error) {
	if m.UpdateCartItemQuantityFunc != nil {
		return m.UpdateCartItemQuantityFunc(ctx, arg)
	}
	return 0, nil
}

func (m *mockQuerier) RemoveCartItem(ctx context.Context, arg repository.RemoveCartItemParams) (int64, error) {
	if m.RemoveCartItemFunc != nil {
		return m.RemoveCartItemFunc(ctx, arg)
	}
	return 0, nil
}

func (m *mockQuerier) CreateOrderWithItems(ctx context.Context, arg repository.CreateOrderParams) (repository.Order, []repository.OrderItem, error) {
	if m.CreateOrderWithItemsFunc != nil {
		return m.CreateOrderWithItemsFunc(ctx, arg)
	}
	return repository.Order{}, nil, errMockNotImplemented
}

func (m *mockQuerier) GetOrderByID(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
	if m.GetOrderByIDFunc != nil {
		return m.GetOrderByIDFunc(ctx, id)
	}
	return repository.Order{}, pgx.ErrNoRows
}

func (m *mockQuerier) GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
	if m.GetOrderItemsFunc != nil {
		return m.GetOrderItemsFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockQuerier) ListOrders(ctx context.Context) ([]repository.Order, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuerier) UpdateOrderStatus(ctx context.Context, arg repository.UpdateOrderStatusParams) (int64, error) {
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(ctx, arg)
	}
	return 1, nil
}

func (m *mockQuerier) CreatePayment(ctx context.Context, arg repository.CreatePaymentParams) (repository.Payment, error) {
	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, arg)
	}
	return repository.Payment{}, errMockNotImplemented
}

func (m *mockQuerier) GetPaymentByID(ctx context.Context, id pgtype.UUID) (repository.Payment, error) {
	if m.GetPaymentByIDFunc != nil {
		return m.GetPaymentByIDFunc(ctx, id)
	}
	return repository.Payment{}, pgx.ErrNoRows
}

func (m *mockQuerier) ListPayments(ctx context.Context) ([]repository.Payment, error) {
	if m.ListPaymentsFunc != nil {
		return m.ListPaymentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuerier) CreateContactMessage(ctx context.Context, arg repository.CreateContactMessageParams) (repository.ContactMessage, error) {
	if m.CreateContactMessageFunc != nil {
		return m.CreateContactMessageFunc(ctx, arg)
	}
	return repository.ContactMessage{}, errMockNotImplemented
}
