package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CreateProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	ImageUrl    string
}

const createProduct = `
INSERT INTO products (name, description, price, currency, image_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, description, price, currency, image_url, created_at, updated_at
`

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct,
		arg.Name, arg.Description, DecimalToNumeric(arg.Price), arg.Currency, arg.ImageUrl)
	return scanProduct(row)
}

const getProductByID = `
SELECT id, name, description, price, currency, image_url, created_at, updated_at
FROM products
WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, id pgtype.UUID) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, getProductByID, id))
}

const listProducts = `
SELECT id, name, description, price, currency, image_url, created_at, updated_at
FROM products
ORDER BY created_at, id
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

type UpdateProductParams struct {
	ID          pgtype.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	ImageUrl    string
}

const updateProduct = `
UPDATE products
SET name = $2, description = $3, price = $4, currency = $5, image_url = $6, updated_at = now()
WHERE id = $1
RETURNING id, name, description, price, currency, image_url, created_at, updated_at
`

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, updateProduct,
		arg.ID, arg.Name, arg.Description, DecimalToNumeric(arg.Price), arg.Currency, arg.ImageUrl)
	return scanProduct(row)
}

const deleteProduct = `
DELETE FROM products
WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countProducts = `
SELECT count(*) FROM products
`

func (q *Queries) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countProducts).Scan(&count)
	return count, err
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var price pgtype.Numeric
	err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Currency, &p.ImageUrl, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}
	p.Price = NumericToDecimal(price)
	return p, nil
}
