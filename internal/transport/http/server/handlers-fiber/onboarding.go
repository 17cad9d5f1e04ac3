package handlers_fiber

import (
	"strings"

	"whatsapp-crm/internal/dto"
	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/gate"
	"whatsapp-crm/internal/mapper"
	"whatsapp-crm/internal/transport/http/middleware"
	"whatsapp-crm/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
)

// GetOnboarding returns what the onboarding form needs to render.
func (h *Handler) GetOnboarding(c *fiber.Ctx) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return writeError(c, entities.ErrNotAuthenticated)
	}
	return c.Status(fiber.StatusOK).JSON(dto.OnboardingContext{
		Email:       id.Email,
		CountryCode: h.opts.CountryCode,
		Country:     h.opts.Country,
	})
}

// GetWhatsAppCheck is the advisory availability check of the onboarding form.
func (h *Handler) GetWhatsAppCheck(c *fiber.Ctx) error {
	if _, ok := middleware.IdentityFrom(c); !ok {
		return writeError(c, entities.ErrNotAuthenticated)
	}

	number := c.Query("number")
	available, err := h.uc.WhatsAppNumberAvailable(c.UserContext(), number)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NumberCheck{
		WhatsAppNumber: domain.SanitizeWhatsAppNumber(number, h.opts.CountryCode),
		Available:      available,
	})
}

// PostOnboarding creates the business profile of the signed-in user. Form
// posts are redirected to the app root; JSON callers get the client.
func (h *Handler) PostOnboarding(c *fiber.Ctx) error {
	var body dto.OnboardingRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(dto.InvalidArgument, "invalid body", false))
	}

	var caller *entities.Identity
	if id, ok := middleware.IdentityFrom(c); ok {
		caller = &id
	}

	client, err := h.uc.CreateClient(c.UserContext(), caller, mapper.FromOnboardingRequest(body))
	if err != nil {
		return writeError(c, err)
	}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationForm) {
		return c.Redirect(gate.HomePath, fiber.StatusSeeOther)
	}
	return c.Status(fiber.StatusCreated).JSON(mapper.ToClient(*client))
}
