package domain

import (
	"context"
	"time"
)

// User domain errors.
var (
	ErrUserNotFound       = &Error{Code: ENOTFOUND, Message: "User not found"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid username or password"}
	ErrUsernameTaken      = &Error{Code: ECONFLICT, Message: "Username already taken"}
	ErrEmailTaken         = &Error{Code: ECONFLICT, Message: "Email already registered"}
)

// Roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// UserService provides signup, login and principal resolution.
type UserService interface {
	// Signup registers a new user with a bcrypt-hashed password.
	Signup(ctx context.Context, params SignupParams) (*User, error)

	// Authenticate verifies credentials and returns the matching user.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*User, error)
}

// SignupParams contains parameters for user registration.
type SignupParams struct {
	Username string
	Email    string
	Password string
}

// User is a registered account.
type User struct {
	ID        string
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Principal is the authenticated caller identity carried through request
// context. A nil *Principal means anonymous.
type Principal struct {
	UserID   string
	Username string
	Email    string
	Role     string
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
