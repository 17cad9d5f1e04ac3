package usecase

import (
	"context"

	"whatsapp-crm/internal/entities"
)

// OnboardingUsecaseInterface abstracts client creation for a signed-in user.
type OnboardingUsecaseInterface interface {
	CreateClient(ctx context.Context, identity *entities.Identity, profile entities.BusinessProfile) (*entities.Client, error)
	WhatsAppNumberAvailable(ctx context.Context, number string) (bool, error)
}

// MembershipUsecaseInterface abstracts the membership lookup used by the access gate.
type MembershipUsecaseInterface interface {
	FindMembershipByUser(ctx context.Context, userID string) (*entities.Membership, error)
}

// DashboardUsecaseInterface abstracts tenant-scoped reads.
type DashboardUsecaseInterface interface {
	Overview(ctx context.Context, clientID string) (entities.Overview, error)
	Leads(ctx context.Context, clientID string, filter entities.LeadFilter) ([]entities.Lead, error)
	Campaigns(ctx context.Context, clientID string) ([]entities.Campaign, error)
	Analytics(ctx context.Context, clientID string) (entities.Analytics, error)
	Client(ctx context.Context, clientID string) (*entities.Client, error)
}
