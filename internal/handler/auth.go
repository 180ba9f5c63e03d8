package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/middleware"
)

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Signup registers a new account and returns a token for it.
func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.users.Signup(c.Request().Context(), domain.SignupParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		return domain.Internal(err, "auth.signup", "failed to issue token")
	}
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

// Login verifies credentials and returns a bearer token.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.users.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		return domain.Internal(err, "auth.login", "failed to issue token")
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// Me returns the authenticated account.
func (h *Handler) Me(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)

	user, err := h.users.GetUser(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// bind decodes and validates a request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Invalid("request.bind", "Invalid request body")
	}
	return c.Validate(req)
}
