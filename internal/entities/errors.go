// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotAuthenticated is returned when no session identity is present.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrClientNotFound signals a missing client (tenant).
	ErrClientNotFound = errors.New("client not found")
	// ErrMembershipNotFound signals a user without membership.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrMembershipConflict signals more than one membership row for a user.
	ErrMembershipConflict = errors.New("multiple memberships for user")
	// ErrAlreadyOnboarded signals an attempt to onboard a user that already has a client.
	ErrAlreadyOnboarded = errors.New("already onboarded")
	// ErrDuplicateWhatsAppNumber signals the WhatsApp number is bound to another client.
	ErrDuplicateWhatsAppNumber = errors.New("whatsapp number already registered")
	// ErrLinkFailed signals the membership could not be created for a new client.
	ErrLinkFailed = errors.New("linking failed")
)
