package handlers_fiber

import (
	"whatsapp-crm/internal/gate"
	"whatsapp-crm/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// Ungated paths. Logout and the guard endpoint must stay reachable for
// users the gate would otherwise redirect.
const (
	HealthPath = "/healthz"
	GatePath   = "/gate"
	LogoutPath = "/logout"
)

// RegisterHandlers installs the gate middleware and all routes on app.
func RegisterHandlers(app fiber.Router, h *Handler) {
	app.Use(middleware.Gate(h.gate, middleware.GateConfig{
		AccessCookie: h.opts.AccessCookie,
		Bypass:       []string{HealthPath, GatePath, LogoutPath},
	}))

	app.Get(HealthPath, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get(GatePath, h.GetGate)
	app.Post(LogoutPath, h.PostLogout)

	app.Get(gate.LoginPath, h.GetLogin)
	app.Get(gate.AuthCallbackPath, h.GetAuthCallback)

	app.Get(gate.OnboardingPath, h.GetOnboarding)
	app.Get(gate.OnboardingPath+"/whatsapp-check", h.GetWhatsAppCheck)
	app.Post(gate.OnboardingPath, h.PostOnboarding)

	app.Get(gate.HomePath, h.GetOverview)
	app.Get("/leads", h.GetLeads)
	app.Get("/leads/stream", h.GetLeadsStream)
	app.Get("/campaigns", h.GetCampaigns)
	app.Get("/analytics", h.GetAnalytics)
	app.Get("/settings", h.GetSettings)
}
