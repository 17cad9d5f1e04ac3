package postgres

import (
	"context"
	"errors"
	"fmt"

	"whatsapp-crm/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	clientColumns = `id::text, business_name, business_type, phone_number, email, address,
city, state, country, whatsapp_number, website, created_at`
	insertClientQuery = `
INSERT INTO clients(business_name, business_type, phone_number, email, address, city, state, country, whatsapp_number, website)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id::text, created_at`
	deleteClientQuery       = `DELETE FROM clients WHERE id = $1`
	selectClientQuery       = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	whatsAppNumberUsedQuery = `SELECT EXISTS (SELECT 1 FROM clients WHERE whatsapp_number = $1)`
)

// CreateClient inserts a client. A taken WhatsApp number yields ErrDuplicateWhatsAppNumber.
func (p *Postgres) CreateClient(ctx context.Context, c entities.Client) (*entities.Client, error) {
	err := p.db.QueryRow(ctx, insertClientQuery,
		c.BusinessName, c.BusinessType, c.PhoneNumber, c.Email, c.Address,
		c.City, c.State, c.Country, c.WhatsAppNumber, c.Website,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrDuplicateWhatsAppNumber
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	p.log.Infow("client created", "client_id", c.ID, "business_name", c.BusinessName)
	return &c, nil
}

// DeleteClient removes a client and, through the cascade, its memberships.
func (p *Postgres) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := p.db.Exec(ctx, deleteClientQuery, clientID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrClientNotFound
	}

	p.log.Infow("client deleted", "client_id", clientID)
	return nil
}

// GetClient fetches a client by id.
func (p *Postgres) GetClient(ctx context.Context, clientID string) (*entities.Client, error) {
	var c entities.Client
	err := p.db.QueryRow(ctx, selectClientQuery, clientID).Scan(
		&c.ID, &c.BusinessName, &c.BusinessType, &c.PhoneNumber, &c.Email, &c.Address,
		&c.City, &c.State, &c.Country, &c.WhatsAppNumber, &c.Website, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// WhatsAppNumberExists reports whether any client already uses the number.
func (p *Postgres) WhatsAppNumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, whatsAppNumberUsedQuery, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("check whatsapp number: %w", err)
	}
	return exists, nil
}
