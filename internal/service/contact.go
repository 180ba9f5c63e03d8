package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/mail"
	"github.com/codeop/store/internal/repository"
)

type contactService struct {
	queries repository.Querier
	sender  mail.Sender
	logger  *slog.Logger
}

// NewContactService creates a contact-form service. sender may be nil when
// no SMTP relay is configured; messages are then only persisted.
func NewContactService(queries repository.Querier, sender mail.Sender, logger *slog.Logger) domain.ContactService {
	return &contactService{queries: queries, sender: sender, logger: logger}
}

func (s *contactService) Submit(ctx context.Context, params domain.ContactParams) (*domain.ContactMessage, error) {
	const op = "contact.submit"

	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	message := strings.TrimSpace(params.Message)
	if name == "" {
		return nil, domain.Invalid(op, "Name is required")
	}
	if email == "" {
		return nil, domain.Invalid(op, "Email is required")
	}
	if message == "" {
		return nil, domain.Invalid(op, "Message is required")
	}

	row, err := s.queries.CreateContactMessage(ctx, repository.CreateContactMessageParams{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to store contact message")
	}

	if s.sender != nil {
		if err := s.sender.SendContactMessage(name, email, message); err != nil {
			s.logger.Error("failed to forward contact message",
				"message_id", repository.UUIDString(row.ID), "error", err)
		}
	}

	return &domain.ContactMessage{
		ID:        repository.UUIDString(row.ID),
		Name:      row.Name,
		Email:     row.Email,
		Message:   row.Message,
		CreatedAt: row.CreatedAt.Time,
	}, nil
}
