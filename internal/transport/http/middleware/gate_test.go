package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/gate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCookie = "sb-access-token"

type fakeIdentities map[string]*entities.Identity

func (f fakeIdentities) Resolve(_ context.Context, token string) (*entities.Identity, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return nil, errors.New("invalid token")
}

type fakeMemberships struct {
	byUser map[string]*entities.Membership
	err    error
}

func (f fakeMemberships) FindMembershipByUser(_ context.Context, userID string) (*entities.Membership, error) {
	if f.err != nil {
		return nil, f.err
	}
	if m, ok := f.byUser[userID]; ok {
		return m, nil
	}
	return nil, entities.ErrMembershipNotFound
}

var (
	member   = &entities.Identity{UserID: "member", Email: "m@example.com"}
	newcomer = &entities.Identity{UserID: "newcomer"}
	tokens   = fakeIdentities{"member-token": member, "newcomer-token": newcomer}
)

func newApp(memberships fakeMemberships) *fiber.App {
	g := gate.New(tokens, memberships, zap.NewNop().Sugar())

	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop().Sugar()))
	app.Use(Gate(g, GateConfig{AccessCookie: testCookie, Bypass: []string{"/healthz"}}))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	handler := func(c *fiber.Ctx) error {
		if p, ok := PrincipalFrom(c); ok {
			return c.SendString("client:" + p.ClientID)
		}
		if id, ok := IdentityFrom(c); ok {
			return c.SendString("user:" + id.UserID)
		}
		return c.SendString("anonymous")
	}
	app.Get("/", handler)
	app.Get("/leads", handler)
	app.Get("/login", handler)
	app.Get("/onboarding", handler)
	app.Get("/auth/callback", handler)
	return app
}

func defaultMemberships() fakeMemberships {
	return fakeMemberships{byUser: map[string]*entities.Membership{
		"member": {UserID: "member", ClientID: "client-1", Role: entities.RoleOwner},
	}}
}

func do(t *testing.T, app *fiber.App, path, token string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestGateRedirects(t *testing.T) {
	app := newApp(defaultMemberships())

	tests := []struct {
		name     string
		path     string
		token    string
		status   int
		location string
		body     string
	}{
		{name: "anonymous protected", path: "/leads", status: http.StatusFound, location: "/login"},
		{name: "anonymous root", path: "/", status: http.StatusFound, location: "/login"},
		{name: "anonymous login", path: "/login", status: http.StatusOK, body: "anonymous"},
		{name: "anonymous onboarding", path: "/onboarding", status: http.StatusOK, body: "anonymous"},
		{name: "anonymous callback", path: "/auth/callback", status: http.StatusOK, body: "anonymous"},
		{name: "invalid token", path: "/leads", token: "forged", status: http.StatusFound, location: "/login"},
		{name: "newcomer protected", path: "/leads", token: "newcomer-token", status: http.StatusFound, location: "/onboarding"},
		{name: "newcomer login", path: "/login", token: "newcomer-token", status: http.StatusFound, location: "/onboarding"},
		{name: "newcomer onboarding", path: "/onboarding", token: "newcomer-token", status: http.StatusOK, body: "user:newcomer"},
		{name: "member login", path: "/login", token: "member-token", status: http.StatusFound, location: "/"},
		{name: "member onboarding", path: "/onboarding", token: "member-token", status: http.StatusFound, location: "/"},
		{name: "member protected", path: "/leads", token: "member-token", status: http.StatusOK, body: "client:client-1"},
		{name: "bypass", path: "/healthz", status: http.StatusOK, body: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, app, tt.path, tt.token)
			require.Equal(t, tt.status, resp.StatusCode)
			if tt.location != "" {
				require.Equal(t, tt.location, resp.Header.Get(fiber.HeaderLocation))
			}
			if tt.body != "" {
				require.Equal(t, tt.body, body)
			}
		})
	}
}

func TestGateMembershipErrorFailsClosed(t *testing.T) {
	app := newApp(fakeMemberships{err: errors.New("connection refused")})

	resp, _ := do(t, app, "/leads", "member-token")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/onboarding", resp.Header.Get(fiber.HeaderLocation))
}

func TestGateAcceptsBearerToken(t *testing.T) {
	app := newApp(defaultMemberships())

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer member-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateIsIdempotent(t *testing.T) {
	app := newApp(defaultMemberships())

	first, _ := do(t, app, "/leads", "newcomer-token")
	second, _ := do(t, app, "/leads", "newcomer-token")
	require.Equal(t, first.StatusCode, second.StatusCode)
	require.Equal(t, first.Header.Get(fiber.HeaderLocation), second.Header.Get(fiber.HeaderLocation))
}
