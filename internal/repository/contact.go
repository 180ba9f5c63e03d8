package repository

import "context"

type CreateContactMessageParams struct {
	Name    string
	Email   string
	Message string
}

const createContactMessage = `
INSERT INTO contact_messages (name, email, message)
VALUES ($1, $2, $3)
RETURNING id, name, email, message, created_at
`

func (q *Queries) CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (ContactMessage, error) {
	row := q.db.QueryRow(ctx, createContactMessage, arg.Name, arg.Email, arg.Message)

	var m ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt)
	return m, err
}
