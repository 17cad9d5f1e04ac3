package middleware

import (
	"strings"

	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/gate"

	"github.com/gofiber/fiber/v2"
)

const (
	localIdentity  = "gate.identity"
	localPrincipal = "gate.principal"
)

// GateConfig configures the Gate middleware.
type GateConfig struct {
	// AccessCookie carries the session token. A bearer Authorization
	// header is accepted when the cookie is absent.
	AccessCookie string
	// Bypass lists exact paths that are not gated.
	Bypass []string
}

// Gate evaluates the access gate once per request. Denied requests are
// redirected with 302 Found; allowed requests carry the resolved identity
// and, for members, the principal in locals.
func Gate(g *gate.Gate, cfg GateConfig) fiber.Handler {
	bypass := make(map[string]struct{}, len(cfg.Bypass))
	for _, p := range cfg.Bypass {
		bypass[p] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if _, ok := bypass[c.Path()]; ok {
			return c.Next()
		}

		d := g.Evaluate(c.UserContext(), SessionToken(c, cfg.AccessCookie), c.Path())
		if !d.Allowed() {
			return c.Redirect(d.Location, fiber.StatusFound)
		}

		if d.Identity != nil {
			c.Locals(localIdentity, *d.Identity)
		}
		if p, ok := d.Principal(); ok {
			c.Locals(localPrincipal, p)
		}
		return c.Next()
	}
}

// SessionToken reads the session token from the cookie or a bearer header.
func SessionToken(c *fiber.Ctx, cookie string) string {
	if cookie != "" {
		if v := c.Cookies(cookie); v != "" {
			return v
		}
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// IdentityFrom returns the identity stored by Gate.
func IdentityFrom(c *fiber.Ctx) (entities.Identity, bool) {
	id, ok := c.Locals(localIdentity).(entities.Identity)
	return id, ok
}

// PrincipalFrom returns the principal stored by Gate.
func PrincipalFrom(c *fiber.Ctx) (entities.Principal, bool) {
	p, ok := c.Locals(localPrincipal).(entities.Principal)
	return p, ok
}
