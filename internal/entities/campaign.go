// Package entities contains core business entities.
package entities

import "time"

// CampaignStatus enumerates campaign lifecycle states.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign is a broadcast owned by a client, with delivery counters
// reported by the messaging provider.
type Campaign struct {
	ID              string
	ClientID        string
	Name            string
	Status          CampaignStatus
	MessageTemplate string
	TotalSent       int64
	TotalDelivered  int64
	TotalRead       int64
	Replied         int64
	ScheduledAt     *time.Time
	CreatedAt       time.Time
}
