package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/repository"
)

type userService struct {
	queries repository.Querier
	logger  *slog.Logger
}

// NewUserService creates an account service.
func NewUserService(queries repository.Querier, logger *slog.Logger) domain.UserService {
	return &userService{queries: queries, logger: logger}
}

func (s *userService) Signup(ctx context.Context, params domain.SignupParams) (*domain.User, error) {
	const op = "user.signup"

	username := strings.TrimSpace(params.Username)
	email := strings.TrimSpace(params.Email)
	if username == "" {
		return nil, domain.Invalid(op, "Username is required")
	}
	if email == "" {
		return nil, domain.Invalid(op, "Email is required")
	}
	if len(params.Password) < 8 {
		return nil, domain.Invalid(op, "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to hash password")
	}

	row, err := s.queries.CreateUser(ctx, repository.CreateUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		switch {
		case repository.IsUniqueViolation(err, "users_username_key"):
			return nil, domain.ErrUsernameTaken
		case repository.IsUniqueViolation(err, "users_email_key"):
			return nil, domain.ErrEmailTaken
		}
		return nil, domain.Internal(err, op, "failed to create user")
	}

	s.logger.Info("user registered", "user_id", repository.UUIDString(row.ID), "username", row.Username)
	return userFromRow(row), nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	const op = "user.authenticate"

	row, err := s.queries.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.Internal(err, op, "failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return userFromRow(row), nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	const op = "user.get"

	id, err := parseID(op, "user", userID)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.Internal(err, op, "failed to get user")
	}
	return userFromRow(row), nil
}
