// Package entities contains core business entities.
package entities

// Identity is the session identity issued by the hosted auth backend.
// Email may be empty.
type Identity struct {
	UserID string
	Email  string
}

// Principal is resolved once per request and passed explicitly to data fetches.
type Principal struct {
	Identity Identity
	ClientID string
	Role     Role
}
