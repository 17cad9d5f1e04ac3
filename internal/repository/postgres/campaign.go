package postgres

import (
	"context"
	"fmt"

	"whatsapp-crm/internal/entities"
)

const selectCampaignsQuery = `
SELECT id::text, client_id::text, campaign_name, status, message_template,
       total_sent, total_delivered, total_read, replied, scheduled_at, created_at
FROM campaigns
WHERE client_id = $1
ORDER BY created_at DESC, id`

// ListCampaigns returns the client's campaigns, newest first.
func (p *Postgres) ListCampaigns(ctx context.Context, clientID string) ([]entities.Campaign, error) {
	rows, err := p.db.Query(ctx, selectCampaignsQuery, clientID)
	if err != nil {
		return nil, fmt.Errorf("select campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]entities.Campaign, 0)
	for rows.Next() {
		var c entities.Campaign
		var status string
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Name, &status, &c.MessageTemplate,
			&c.TotalSent, &c.TotalDelivered, &c.TotalRead, &c.Replied, &c.ScheduledAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		c.Status = entities.CampaignStatus(status)
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}
	return campaigns, nil
}
