// Package identity adapts the hosted auth backend: it verifies session
// tokens and exchanges OAuth authorization codes for sessions.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"whatsapp-crm/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultAudience is the audience the auth backend stamps on user sessions.
const DefaultAudience = "authenticated"

var (
	// ErrMissingSubject is returned for tokens without a subject claim.
	ErrMissingSubject = errors.New("session token has no subject")
	// ErrInvalidSubject is returned when the subject is not a user uuid.
	ErrInvalidSubject = errors.New("session token subject is not a uuid")
)

// Claims are the access token claims the gate relies on.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 access tokens signed with the project secret.
type Verifier struct {
	secret   []byte
	audience string
	now      func() time.Time
}

// NewVerifier constructs a Verifier. An empty audience disables the
// audience check.
func NewVerifier(secret, audience string, now func() time.Time) *Verifier {
	if now == nil {
		now = time.Now
	}
	return &Verifier{secret: []byte(secret), audience: audience, now: now}
}

// Resolve implements gate.IdentityResolver. An empty token is not an error.
func (v *Verifier) Resolve(_ context.Context, token string) (*entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	var claims Claims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return nil, fmt.Errorf("verify session token: %w", err)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrMissingSubject
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, ErrInvalidSubject
	}

	return &entities.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
