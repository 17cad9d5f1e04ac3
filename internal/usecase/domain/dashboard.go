package domain

import (
	"context"
	"fmt"

	"whatsapp-crm/internal/entities"
)

// Overview returns the landing snapshot of a client.
func (u *Usecase) Overview(ctx context.Context, clientID string) (entities.Overview, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := requireClientID(clientID); err != nil {
		return entities.Overview{}, err
	}

	client, err := u.repo.GetClient(ctx, clientID)
	if err != nil {
		return entities.Overview{}, err
	}
	leads, err := u.repo.ListLeads(ctx, clientID, entities.LeadFilter{})
	if err != nil {
		return entities.Overview{}, err
	}
	campaigns, err := u.repo.ListCampaigns(ctx, clientID)
	if err != nil {
		return entities.Overview{}, err
	}

	ov := entities.Overview{
		Client:     *client,
		TotalLeads: int64(len(leads)),
	}
	for _, l := range leads {
		if l.Status == entities.LeadNew {
			ov.NewLeads++
		}
	}
	for _, c := range campaigns {
		if c.Status == entities.CampaignActive {
			ov.ActiveCampaigns++
		}
	}
	recent := min(u.settings.RecentLeads, len(leads))
	ov.RecentLeads = leads[:recent]

	return ov, nil
}

// Leads lists the client's leads, newest first.
func (u *Usecase) Leads(ctx context.Context, clientID string, filter entities.LeadFilter) ([]entities.Lead, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := requireClientID(clientID); err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.Valid() {
		u.log.Errorw("failed to list leads: unknown status", "status", filter.Status)
		return nil, fmt.Errorf("%w: unknown lead status %q", entities.ErrInvalidArgument, filter.Status)
	}
	if filter.Limit < 0 {
		filter.Limit = 0
	}
	return u.repo.ListLeads(ctx, clientID, filter)
}

// Campaigns lists the client's campaigns, newest first.
func (u *Usecase) Campaigns(ctx context.Context, clientID string) ([]entities.Campaign, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := requireClientID(clientID); err != nil {
		return nil, err
	}
	return u.repo.ListCampaigns(ctx, clientID)
}

// Analytics aggregates the client's leads and campaigns.
func (u *Usecase) Analytics(ctx context.Context, clientID string) (entities.Analytics, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := requireClientID(clientID); err != nil {
		return entities.Analytics{}, err
	}
	leads, err := u.repo.ListLeads(ctx, clientID, entities.LeadFilter{})
	if err != nil {
		return entities.Analytics{}, err
	}
	campaigns, err := u.repo.ListCampaigns(ctx, clientID)
	if err != nil {
		return entities.Analytics{}, err
	}
	return BuildAnalytics(leads, campaigns), nil
}

// Client returns the business profile of the tenant.
func (u *Usecase) Client(ctx context.Context, clientID string) (*entities.Client, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := requireClientID(clientID); err != nil {
		return nil, err
	}
	return u.repo.GetClient(ctx, clientID)
}
