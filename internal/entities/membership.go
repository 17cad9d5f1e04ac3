// Package entities contains core business entities.
package entities

import "time"

// Role enumerates membership roles.
type Role string

const (
	// RoleOwner is granted to the user who onboarded the client.
	RoleOwner Role = "owner"
)

// Membership binds one user to one client.
type Membership struct {
	ID        string
	UserID    string
	ClientID  string
	Role      Role
	CreatedAt time.Time
}
