package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeop/store/internal/domain"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact accepts a contact-form submission.
func (h *Handler) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	msg, err := h.contact.Submit(c.Request().Context(), domain.ContactParams{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": msg.ID, "status": "received"})
}
