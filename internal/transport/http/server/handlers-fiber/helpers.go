package handlers_fiber

import (
	"errors"
	"net/http"

	"whatsapp-crm/internal/dto"
	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.Internal
	msg := "internal error"
	retryable := false

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.InvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrNotAuthenticated):
		status = http.StatusUnauthorized
		code = dto.NotAuthenticated
		msg = "you must be logged in"
	case errors.Is(err, entities.ErrClientNotFound), errors.Is(err, entities.ErrMembershipNotFound):
		status = http.StatusNotFound
		code = dto.NotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrAlreadyOnboarded):
		status = http.StatusConflict
		code = dto.AlreadyOnboarded
		msg = "business profile already exists for this user"
	case errors.Is(err, entities.ErrDuplicateWhatsAppNumber):
		status = http.StatusConflict
		code = dto.DuplicateWhatsAppNumber
		msg = "This WhatsApp number is already registered with another business"
	case errors.Is(err, entities.ErrLinkFailed):
		code = dto.LinkFailed
		msg = "Failed to link business profile to user, please try again"
		retryable = true
	}

	return c.Status(status).JSON(errorResponse(code, msg, retryable))
}

func errorResponse(code dto.ErrorCode, msg string, retryable bool) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg, Retryable: retryable}}
}

// clientID returns the tenant resolved by the gate for this request.
func clientID(c *fiber.Ctx) (string, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.ClientID == "" {
		return "", entities.ErrNotAuthenticated
	}
	return p.ClientID, nil
}
