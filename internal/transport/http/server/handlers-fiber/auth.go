package handlers_fiber

import (
	"time"

	"whatsapp-crm/internal/dto"
	"whatsapp-crm/internal/gate"
	"whatsapp-crm/internal/identity"
	"whatsapp-crm/internal/mapper"
	"whatsapp-crm/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

const (
	verifierCookieTTL = 10 * time.Minute
	refreshCookieTTL  = 30 * 24 * time.Hour
)

// GetLogin starts the hosted OAuth flow: it stores a PKCE verifier in a
// cookie and returns the authorize URL.
func (h *Handler) GetLogin(c *fiber.Ctx) error {
	verifier, err := identity.NewCodeVerifier()
	if err != nil {
		h.log.Errorw("failed to create code verifier", "error", err)
		return writeError(c, err)
	}
	h.setCookie(c, h.opts.VerifierCookie, verifier, verifierCookieTTL)

	redirectTo := h.opts.PublicURL + gate.AuthCallbackPath
	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		AuthorizeURL: h.auth.AuthorizeURL(redirectTo, identity.CodeChallenge(verifier)),
	})
}

// GetAuthCallback exchanges the authorization code for a session and sends
// the user to the app root or to onboarding.
func (h *Handler) GetAuthCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Redirect(gate.LoginPath, fiber.StatusFound)
	}

	session, err := h.auth.ExchangeCode(c.UserContext(), code, c.Cookies(h.opts.VerifierCookie))
	if err != nil {
		h.log.Warnw("code exchange failed", "error", err)
		return c.Redirect(gate.LoginPath, fiber.StatusFound)
	}

	h.setCookie(c, h.opts.AccessCookie, session.AccessToken, session.ExpiresIn)
	if session.RefreshToken != "" {
		h.setCookie(c, h.opts.RefreshCookie, session.RefreshToken, refreshCookieTTL)
	}
	h.clearCookie(c, h.opts.VerifierCookie)

	location := h.gate.Landing(c.UserContext(), &session.Identity)
	h.log.Infow("signed in", "user_id", session.Identity.UserID, "location", location)
	return c.Redirect(location, fiber.StatusFound)
}

// PostLogout drops the session cookies.
func (h *Handler) PostLogout(c *fiber.Ctx) error {
	h.clearCookie(c, h.opts.AccessCookie)
	h.clearCookie(c, h.opts.RefreshCookie)
	return c.Redirect(gate.LoginPath, fiber.StatusFound)
}

// GetGate answers the client-side guard with the decision for ?path=.
func (h *Handler) GetGate(c *fiber.Ctx) error {
	path := c.Query("path", gate.HomePath)
	d := h.gate.Evaluate(c.UserContext(), middleware.SessionToken(c, h.opts.AccessCookie), path)
	return c.Status(fiber.StatusOK).JSON(mapper.ToGateDecision(path, d))
}

func (h *Handler) setCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   h.opts.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   h.opts.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
