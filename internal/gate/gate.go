// Package gate decides whether a request may proceed, given the session
// identity, its client membership and the requested path.
//
// The same Gate is used by every enforcement point: the HTTP middleware,
// the client-side guard endpoint, onboarding and the auth callback.
package gate

import (
	"context"
	"errors"

	"whatsapp-crm/internal/entities"

	"go.uber.org/zap"
)

// Outcome is the result of a gate evaluation.
type Outcome string

const (
	Allow              Outcome = "allow"
	RedirectLogin      Outcome = "redirect_login"
	RedirectOnboarding Outcome = "redirect_onboarding"
	RedirectHome       Outcome = "redirect_home"
)

// IdentityResolver returns the identity behind a session token. A nil
// identity with a nil error means no session.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*entities.Identity, error)
}

// MembershipFinder looks up the single membership of a user. It returns
// entities.ErrMembershipNotFound when the user has none.
type MembershipFinder interface {
	FindMembershipByUser(ctx context.Context, userID string) (*entities.Membership, error)
}

// Decision is recomputed for every request and never cached.
type Decision struct {
	Outcome    Outcome
	Location   string
	Class      PathClass
	Identity   *entities.Identity
	Membership *entities.Membership
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

// Principal returns the request principal when the decision grants access
// to tenant data.
func (d Decision) Principal() (entities.Principal, bool) {
	if !d.Allowed() || d.Identity == nil || d.Membership == nil {
		return entities.Principal{}, false
	}
	return entities.Principal{
		Identity: *d.Identity,
		ClientID: d.Membership.ClientID,
		Role:     d.Membership.Role,
	}, true
}

// Decide is the access state machine. It performs no I/O.
func Decide(identity *entities.Identity, membership *entities.Membership, class PathClass) Decision {
	d := Decision{Class: class, Identity: identity, Membership: membership}

	if identity == nil || identity.UserID == "" {
		d.Identity, d.Membership = nil, nil
		switch class {
		case ClassLogin, ClassOnboarding, ClassAuthCallback:
			d.Outcome = Allow
		default:
			d.Outcome, d.Location = RedirectLogin, LoginPath
		}
		return d
	}

	if membership == nil {
		if class == ClassOnboarding {
			d.Outcome = Allow
		} else {
			d.Outcome, d.Location = RedirectOnboarding, OnboardingPath
		}
		return d
	}

	switch class {
	case ClassOnboarding, ClassLogin:
		d.Outcome, d.Location = RedirectHome, HomePath
	default:
		d.Outcome = Allow
	}
	return d
}

// Gate resolves identity and membership and applies Decide.
type Gate struct {
	identities  IdentityResolver
	memberships MembershipFinder
	log         *zap.SugaredLogger
}

// New constructs a Gate.
func New(identities IdentityResolver, memberships MembershipFinder, log *zap.SugaredLogger) *Gate {
	return &Gate{
		identities:  identities,
		memberships: memberships,
		log:         log.Named("gate"),
	}
}

// Identify resolves the session token. Any failure yields no identity.
func (g *Gate) Identify(ctx context.Context, token string) *entities.Identity {
	if token == "" {
		return nil
	}
	identity, err := g.identities.Resolve(ctx, token)
	if err != nil {
		g.log.Warnw("identity resolution failed", "error", err)
		return nil
	}
	return identity
}

// Membership resolves the membership of identity. Any failure, including
// more than one row, yields no membership.
func (g *Gate) Membership(ctx context.Context, identity *entities.Identity) *entities.Membership {
	if identity == nil || identity.UserID == "" {
		return nil
	}
	m, err := g.memberships.FindMembershipByUser(ctx, identity.UserID)
	switch {
	case err == nil:
		return m
	case errors.Is(err, entities.ErrMembershipNotFound):
		return nil
	case errors.Is(err, entities.ErrMembershipConflict):
		g.log.Errorw("membership data integrity violation", "user_id", identity.UserID, "error", err)
		return nil
	default:
		g.log.Warnw("membership lookup failed", "user_id", identity.UserID, "error", err)
		return nil
	}
}

// Evaluate runs identity, membership and decision in that order.
func (g *Gate) Evaluate(ctx context.Context, token, path string) Decision {
	class := Classify(path)
	identity := g.Identify(ctx, token)

	var membership *entities.Membership
	if identity != nil {
		membership = g.Membership(ctx, identity)
	}

	d := Decide(identity, membership, class)
	g.log.Debugw("gate decision", "path", path, "class", class.String(), "outcome", d.Outcome)
	return d
}

// Landing picks where a freshly signed-in identity should go: the app root
// when it already has a membership, onboarding otherwise.
func (g *Gate) Landing(ctx context.Context, identity *entities.Identity) string {
	if identity == nil {
		return LoginPath
	}
	if g.Membership(ctx, identity) == nil {
		return OnboardingPath
	}
	return HomePath
}
