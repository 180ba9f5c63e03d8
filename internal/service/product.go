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

type productService struct {
	queries repository.Querier
	logger  *slog.Logger
}

// NewProductService creates a catalog service.
func NewProductService(queries repository.Querier, logger *slog.Logger) domain.ProductService {
	return &productService{queries: queries, logger: logger}
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	const op = "product.get"

	id, err := parseID(op, "product", productID)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "failed to get product")
	}
	return productFromRow(row), nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "product.list"

	rows, err := s.queries.ListProducts(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list products")
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, *productFromRow(row))
	}
	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, params domain.ProductParams) (*domain.Product, error) {
	const op = "product.create"

	if err := validateProductParams(op, params); err != nil {
		return nil, err
	}

	row, err := s.queries.CreateProduct(ctx, repository.CreateProductParams{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Currency:    domain.NormalizeCurrency(params.Currency),
		ImageUrl:    params.ImageURL,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create product")
	}

	s.logger.Info("product created", "product_id", repository.UUIDString(row.ID), "name", row.Name)
	return productFromRow(row), nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, params domain.ProductParams) (*domain.Product, error) {
	const op = "product.update"

	id, err := parseID(op, "product", productID)
	if err != nil {
		return nil, err
	}
	if err := validateProductParams(op, params); err != nil {
		return nil, err
	}

	row, err := s.queries.UpdateProduct(ctx, repository.UpdateProductParams{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Currency:    domain.NormalizeCurrency(params.Currency),
		ImageUrl:    params.ImageURL,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "failed to update product")
	}
	return productFromRow(row), nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	const op = "product.delete"

	id, err := parseID(op, "product", productID)
	if err != nil {
		return err
	}

	affected, err := s.queries.DeleteProduct(ctx, id)
	if err != nil {
		return domain.Internal(err, op, "failed to delete product")
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	s.logger.Info("product deleted", "product_id", productID)
	return nil
}

func validateProductParams(op string, params domain.ProductParams) error {
	if params.Name == "" {
		return domain.Invalid(op, "Product name is required")
	}
	if params.Price.LessThan(decimal.Zero) {
		return domain.Invalid(op, "Product price must not be negative")
	}
	if domain.NormalizeCurrency(params.Currency) == "" {
		return domain.Invalid(op, "Product currency is required")
	}
	return nil
}
