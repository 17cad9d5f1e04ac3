package postgres

import (
	"context"
	"fmt"
	"strings"

	"whatsapp-crm/internal/entities"
)

const selectLeadsQuery = `
SELECT id::text, client_id::text, customer_name, customer_phone, source, status, message, tags, created_at
FROM leads
WHERE client_id = $1
  AND ($2::text = '' OR status = $2::text)
  AND ($3::text = '' OR source = $3::text)
  AND ($4::text = '' OR customer_name ILIKE '%' || $4::text || '%' ESCAPE '\' OR customer_phone ILIKE '%' || $4::text || '%' ESCAPE '\')
ORDER BY created_at DESC, id
LIMIT NULLIF($5::int, 0)`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes a search term match literally inside an ILIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// ListLeads returns the client's leads, newest first.
func (p *Postgres) ListLeads(ctx context.Context, clientID string, filter entities.LeadFilter) ([]entities.Lead, error) {
	rows, err := p.db.Query(ctx, selectLeadsQuery,
		clientID, string(filter.Status), filter.Source, escapeLike(filter.Query), filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("select leads: %w", err)
	}
	defer rows.Close()

	leads := make([]entities.Lead, 0)
	for rows.Next() {
		var l entities.Lead
		var status string
		if err := rows.Scan(&l.ID, &l.ClientID, &l.CustomerName, &l.CustomerPhone,
			&l.Source, &status, &l.Message, &l.Tags, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		l.Status = entities.LeadStatus(status)
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return leads, nil
}
