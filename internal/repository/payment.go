package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CreatePaymentParams struct {
	OrderID           pgtype.UUID
	Provider          string
	ProviderReference string
	Amount            decimal.Decimal
	Currency          string
	Status            string
}

const createPayment = `
INSERT INTO payments (order_id, provider, provider_reference, amount, currency, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, order_id, provider, provider_reference, amount, currency, status, created_at
`

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.OrderID, arg.Provider, arg.ProviderReference, DecimalToNumeric(arg.Amount), arg.Currency, arg.Status)
	return scanPayment(row)
}

const getPaymentByID = `
SELECT id, order_id, provider, provider_reference, amount, currency, status, created_at
FROM payments
WHERE id = $1
`

func (q *Queries) GetPaymentByID(ctx context.Context, id pgtype.UUID) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPaymentByID, id))
}

const listPayments = `
SELECT id, order_id, provider, provider_reference, amount, currency, status, created_at
FROM payments
ORDER BY created_at DESC, id
`

func (q *Queries) ListPayments(ctx context.Context) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPayments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func scanPayment(row rowScanner) (Payment, error) {
	var p Payment
	var amount pgtype.Numeric
	err := row.Scan(&p.ID, &p.OrderID, &p.Provider, &p.ProviderReference, &amount, &p.Currency, &p.Status, &p.CreatedAt)
	if err != nil {
		return Payment{}, err
	}
	p.Amount = NumericToDecimal(amount)
	return p, nil
}
