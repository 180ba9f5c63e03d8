// Package middleware contains the HTTP middleware chain: authentication,
// request IDs, request logging and Prometheus metrics.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/codeop/store/internal/domain"
)

const principalContextKey = "principal"

// Claims is the JWT payload issued at login.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Auth issues and verifies bearer tokens.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

// NewAuth creates an Auth with the given signing secret and token lifetime.
func NewAuth(secret string, ttl time.Duration) *Auth {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Auth{secret: []byte(secret), ttl: ttl}
}

// TokenTTL returns the configured token lifetime.
func (a *Auth) TokenTTL() time.Duration {
	return a.ttl
}

// IssueToken signs a token for the given user.
func (a *Auth) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Auth) parseToken(token string) (*domain.Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.Unauthorized("auth.token", "Invalid or expired token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, domain.Unauthorized("auth.token", "Invalid or expired token")
	}
	return &domain.Principal{
		UserID:   claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}

// Authenticate resolves an optional bearer token into a request principal.
// Requests without a token proceed anonymously; requests with a bad token
// are rejected.
func (a *Auth) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" {
				return next(c)
			}
			principal, err := a.parseToken(token)
			if err != nil {
				return err
			}
			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// Require rejects anonymous requests.
func Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if PrincipalFrom(c) == nil {
				return domain.Unauthorized("auth.require", "Authentication required")
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose principal lacks the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if principal == nil {
				return domain.Unauthorized("auth.require_admin", "Authentication required")
			}
			if !principal.IsAdmin() {
				return domain.Forbidden("auth.require_admin", "Admin role required")
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the authenticated principal, nil for anonymous
// requests.
func PrincipalFrom(c echo.Context) *domain.Principal {
	principal, _ := c.Get(principalContextKey).(*domain.Principal)
	return principal
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
