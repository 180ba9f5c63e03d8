package domain

import (
	"context"
	"time"
)

// ContactService accepts contact-form submissions.
type ContactService interface {
	// Submit persists the message and forwards it to the support mailbox.
	// Mail delivery is best-effort; a delivery failure does not fail the
	// submission.
	Submit(ctx context.Context, params ContactParams) (*ContactMessage, error)
}

// ContactParams contains a visitor's contact-form submission.
type ContactParams struct {
	Name    string
	Email   string
	Message string
}

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
