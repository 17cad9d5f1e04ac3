package postgres

import (
	"context"
	"errors"
	"fmt"

	"whatsapp-crm/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectMembershipByUserQuery = `
SELECT id::text, user_id::text, client_id::text, role, created_at
FROM user_memberships
WHERE user_id = $1
LIMIT 2`
	insertMembershipQuery = `
INSERT INTO user_memberships(user_id, client_id, role)
VALUES ($1, $2, $3)
RETURNING id::text, created_at`
)

// FindMembershipByUser returns the single membership of a user.
// No rows yields ErrMembershipNotFound, more than one yields ErrMembershipConflict.
func (p *Postgres) FindMembershipByUser(ctx context.Context, userID string) (*entities.Membership, error) {
	rows, err := p.db.Query(ctx, selectMembershipByUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("select membership: %w", err)
	}
	defer rows.Close()

	found := make([]entities.Membership, 0, 1)
	for rows.Next() {
		var m entities.Membership
		var role string
		if err := rows.Scan(&m.ID, &m.UserID, &m.ClientID, &role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		m.Role = entities.Role(role)
		found = append(found, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memberships: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, entities.ErrMembershipNotFound
	case 1:
		return &found[0], nil
	default:
		p.log.Errorw("multiple memberships for user", "user_id", userID)
		return nil, entities.ErrMembershipConflict
	}
}

// CreateMembership binds a user to a client.
func (p *Postgres) CreateMembership(ctx context.Context, m entities.Membership) (*entities.Membership, error) {
	if m.Role == "" {
		m.Role = entities.RoleOwner
	}

	err := p.db.QueryRow(ctx, insertMembershipQuery, m.UserID, m.ClientID, string(m.Role)).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrAlreadyOnboarded
		}
		return nil, fmt.Errorf("insert membership: %w", err)
	}

	p.log.Infow("membership created", "user_id", m.UserID, "client_id", m.ClientID, "role", m.Role)
	return &m, nil
}
