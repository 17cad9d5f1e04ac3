package gate

import (
	"context"
	"errors"
	"testing"

	"whatsapp-crm/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type identityMock struct{ mock.Mock }

func (m *identityMock) Resolve(ctx context.Context, token string) (*entities.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Identity), args.Error(1)
}

type membershipMock struct{ mock.Mock }

func (m *membershipMock) FindMembershipByUser(ctx context.Context, userID string) (*entities.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Membership), args.Error(1)
}

var (
	alice       = &entities.Identity{UserID: "5d7c1c8e-6a43-4f7e-9b57-3f2d0f3b9a11", Email: "alice@example.com"}
	aliceMember = &entities.Membership{ID: "m1", UserID: alice.UserID, ClientID: "c1", Role: entities.RoleOwner}
)

func newGate(t *testing.T) (*Gate, *identityMock, *membershipMock) {
	t.Helper()
	ids := &identityMock{}
	members := &membershipMock{}
	return New(ids, members, zap.NewNop().Sugar()), ids, members
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want PathClass
	}{
		{"/login", ClassLogin},
		{"/login/reset", ClassLogin},
		{"/onboarding", ClassOnboarding},
		{"/onboarding/whatsapp-check", ClassOnboarding},
		{"/auth/callback", ClassAuthCallback},
		{"/", ClassProtected},
		{"/leads", ClassProtected},
		{"/auth", ClassProtected},
		{"/Login", ClassProtected},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Classify(tt.path), tt.path)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		identity   *entities.Identity
		membership *entities.Membership
		class      PathClass
		outcome    Outcome
		location   string
	}{
		{"anonymous protected", nil, nil, ClassProtected, RedirectLogin, LoginPath},
		{"anonymous login", nil, nil, ClassLogin, Allow, ""},
		{"anonymous onboarding", nil, nil, ClassOnboarding, Allow, ""},
		{"anonymous callback", nil, nil, ClassAuthCallback, Allow, ""},
		{"empty user id is anonymous", &entities.Identity{Email: "x@example.com"}, nil, ClassProtected, RedirectLogin, LoginPath},
		{"unboarded protected", alice, nil, ClassProtected, RedirectOnboarding, OnboardingPath},
		{"unboarded login", alice, nil, ClassLogin, RedirectOnboarding, OnboardingPath},
		{"unboarded callback", alice, nil, ClassAuthCallback, RedirectOnboarding, OnboardingPath},
		{"unboarded onboarding", alice, nil, ClassOnboarding, Allow, ""},
		{"member protected", alice, aliceMember, ClassProtected, Allow, ""},
		{"member callback", alice, aliceMember, ClassAuthCallback, Allow, ""},
		{"member onboarding", alice, aliceMember, ClassOnboarding, RedirectHome, HomePath},
		{"member login", alice, aliceMember, ClassLogin, RedirectHome, HomePath},
		{"identity without email", &entities.Identity{UserID: "u2"}, aliceMember, ClassProtected, Allow, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.identity, tt.membership, tt.class)
			require.Equal(t, tt.outcome, d.Outcome)
			require.Equal(t, tt.location, d.Location)
		})
	}
}

func TestDecisionPrincipal(t *testing.T) {
	p, ok := Decide(alice, aliceMember, ClassProtected).Principal()
	require.True(t, ok)
	require.Equal(t, "c1", p.ClientID)
	require.Equal(t, alice.UserID, p.Identity.UserID)
	require.Equal(t, entities.RoleOwner, p.Role)

	_, ok = Decide(alice, nil, ClassOnboarding).Principal()
	require.False(t, ok)

	_, ok = Decide(alice, aliceMember, ClassLogin).Principal()
	require.False(t, ok)
}

func TestEvaluateNoSessionOnProtectedPath(t *testing.T) {
	g, ids, members := newGate(t)

	d := g.Evaluate(context.Background(), "", "/leads")
	require.Equal(t, RedirectLogin, d.Outcome)
	require.Equal(t, "/login", d.Location)
	ids.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	members.AssertNotCalled(t, "FindMembershipByUser", mock.Anything, mock.Anything)
}

func TestEvaluateIdentityFailureFailsToLogin(t *testing.T) {
	g, ids, members := newGate(t)
	ids.On("Resolve", mock.Anything, "expired").Return(nil, errors.New("token is expired"))

	d := g.Evaluate(context.Background(), "expired", "/campaigns")
	require.Equal(t, RedirectLogin, d.Outcome)
	members.AssertNotCalled(t, "FindMembershipByUser", mock.Anything, mock.Anything)
}

func TestEvaluateUnboardedRedirectsToOnboarding(t *testing.T) {
	g, ids, members := newGate(t)
	ids.On("Resolve", mock.Anything, "tok").Return(alice, nil)
	members.On("FindMembershipByUser", mock.Anything, alice.UserID).Return(nil, entities.ErrMembershipNotFound)

	for _, path := range []string{"/", "/leads", "/analytics", "/login"} {
		d := g.Evaluate(context.Background(), "tok", path)
		require.Equal(t, RedirectOnboarding, d.Outcome, path)
		require.Equal(t, "/onboarding", d.Location, path)
	}

	d := g.Evaluate(context.Background(), "tok", "/onboarding")
	require.True(t, d.Allowed())
}

func TestEvaluateMemberLeavesLoginAndOnboarding(t *testing.T) {
	g, ids, members := newGate(t)
	ids.On("Resolve", mock.Anything, "tok").Return(alice, nil)
	members.On("FindMembershipByUser", mock.Anything, alice.UserID).Return(aliceMember, nil)

	for _, path := range []string{"/login", "/onboarding"} {
		d := g.Evaluate(context.Background(), "tok", path)
		require.Equal(t, RedirectHome, d.Outcome, path)
		require.Equal(t, "/", d.Location, path)
	}

	d := g.Evaluate(context.Background(), "tok", "/leads")
	require.True(t, d.Allowed())
	p, ok := d.Principal()
	require.True(t, ok)
	require.Equal(t, "c1", p.ClientID)
}

func TestEvaluateMembershipErrorFailsClosed(t *testing.T) {
	for _, lookupErr := range []error{errors.New("connection reset"), entities.ErrMembershipConflict} {
		g, ids, members := newGate(t)
		ids.On("Resolve", mock.Anything, "tok").Return(alice, nil)
		members.On("FindMembershipByUser", mock.Anything, alice.UserID).Return(nil, lookupErr)

		failed := g.Evaluate(context.Background(), "tok", "/leads")
		missing := Decide(alice, nil, ClassProtected)
		require.Equal(t, missing.Outcome, failed.Outcome)
		require.Equal(t, missing.Location, failed.Location)
		require.False(t, failed.Allowed())
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	g, ids, members := newGate(t)
	ids.On("Resolve", mock.Anything, "tok").Return(alice, nil)
	members.On("FindMembershipByUser", mock.Anything, alice.UserID).Return(aliceMember, nil)

	first := g.Evaluate(context.Background(), "tok", "/campaigns")
	second := g.Evaluate(context.Background(), "tok", "/campaigns")
	require.Equal(t, first, second)
	members.AssertNumberOfCalls(t, "FindMembershipByUser", 2)
}

func TestLanding(t *testing.T) {
	g, _, members := newGate(t)
	bob := &entities.Identity{UserID: "bob"}
	carol := &entities.Identity{UserID: "carol"}
	members.On("FindMembershipByUser", mock.Anything, alice.UserID).Return(aliceMember, nil)
	members.On("FindMembershipByUser", mock.Anything, "bob").Return(nil, entities.ErrMembershipNotFound)
	members.On("FindMembershipByUser", mock.Anything, "carol").Return(nil, errors.New("timeout"))

	require.Equal(t, "/", g.Landing(context.Background(), alice))
	require.Equal(t, "/onboarding", g.Landing(context.Background(), bob))
	require.Equal(t, "/onboarding", g.Landing(context.Background(), carol))
	require.Equal(t, "/login", g.Landing(context.Background(), nil))
}
