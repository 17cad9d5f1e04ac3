// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"whatsapp-crm/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
	Migrate(ctx context.Context) error
}

// MembershipInterface exposes user to client bindings.
type MembershipInterface interface {
	FindMembershipByUser(ctx context.Context, userID string) (*entities.Membership, error)
	CreateMembership(ctx context.Context, m entities.Membership) (*entities.Membership, error)
}

// ClientInterface exposes tenant records.
type ClientInterface interface {
	CreateClient(ctx context.Context, c entities.Client) (*entities.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
	GetClient(ctx context.Context, clientID string) (*entities.Client, error)
	WhatsAppNumberExists(ctx context.Context, number string) (bool, error)
}

// LeadInterface exposes tenant-scoped leads.
type LeadInterface interface {
	ListLeads(ctx context.Context, clientID string, filter entities.LeadFilter) ([]entities.Lead, error)
}

// CampaignInterface exposes tenant-scoped campaigns.
type CampaignInterface interface {
	ListCampaigns(ctx context.Context, clientID string) ([]entities.Campaign, error)
}
