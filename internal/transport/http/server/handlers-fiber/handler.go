// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"context"
	"time"

	"whatsapp-crm/internal/gate"
	"whatsapp-crm/internal/identity"
	"whatsapp-crm/internal/usecase"

	"go.uber.org/zap"
)

const defaultRefreshInterval = 30 * time.Second

// AuthClient is the hosted auth backend as seen by the login flow.
type AuthClient interface {
	AuthorizeURL(redirectTo, challenge string) string
	ExchangeCode(ctx context.Context, code, verifier string) (*identity.Session, error)
}

// Options carries cookie names and dashboard settings.
type Options struct {
	AccessCookie    string
	RefreshCookie   string
	VerifierCookie  string
	CookieSecure    bool
	PublicURL       string
	RefreshInterval time.Duration
	CountryCode     string
	Country         string
}

// Handler serves the dashboard API on top of the usecase layer.
type Handler struct {
	ctx  context.Context
	log  *zap.SugaredLogger
	uc   usecase.InterfaceUsecase
	gate *gate.Gate
	auth AuthClient
	opts Options
}

// NewHandler constructs an HTTP server with service dependencies. Long-lived
// streams end when ctx is cancelled.
func NewHandler(
	log *zap.SugaredLogger,
	ctx context.Context,
	usecase usecase.InterfaceUsecase,
	g *gate.Gate,
	auth AuthClient,
	opts Options,
) *Handler {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = defaultRefreshInterval
	}
	return &Handler{
		ctx:  ctx,
		log:  log.Named("http.handler"),
		uc:   usecase,
		gate: g,
		auth: auth,
		opts: opts,
	}
}
