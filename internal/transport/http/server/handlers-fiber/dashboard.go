package handlers_fiber

import (
	"whatsapp-crm/internal/dto"
	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetOverview returns the dashboard landing snapshot.
func (h *Handler) GetOverview(c *fiber.Ctx) error {
	id, err := clientID(c)
	if err != nil {
		return writeError(c, err)
	}
	ov, err := h.uc.Overview(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(mapper.ToOverview(ov))
}

// GetLeads lists the tenant's leads filtered by ?status=, ?source= and ?q=.
func (h *Handler) GetLeads(c *fiber.Ctx) error {
	id, err := clientID(c)
	if err != nil {
		return writeError(c, err)
	}
	leads, err := h.uc.Leads(c.UserContext(), id, leadFilter(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.LeadList{Leads: mapper.ToLeads(leads)})
}

// GetCampaigns lists the tenant's campaigns.
func (h *Handler) GetCampaigns(c *fiber.Ctx) error {
	id, err := clientID(c)
	if err != nil {
		return writeError(c, err)
	}
	campaigns, err := h.uc.Campaigns(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.CampaignList{Campaigns: mapper.ToCampaigns(campaigns)})
}

// GetAnalytics returns aggregates over leads and campaigns.
func (h *Handler) GetAnalytics(c *fiber.Ctx) error {
	id, err := clientID(c)
	if err != nil {
		return writeError(c, err)
	}
	a, err := h.uc.Analytics(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(mapper.ToAnalytics(a))
}

// GetSettings returns the tenant's business profile.
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	id, err := clientID(c)
	if err != nil {
		return writeError(c, err)
	}
	client, err := h.uc.Client(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(mapper.ToClient(*client))
}

func leadFilter(c *fiber.Ctx) entities.LeadFilter {
	return entities.LeadFilter{
		Status: entities.LeadStatus(c.Query("status")),
		Source: c.Query("source"),
		Query:  c.Query("q"),
		Limit:  c.QueryInt("limit", 0),
	}
}
