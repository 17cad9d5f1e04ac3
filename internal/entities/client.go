// Package entities contains core business entities.
package entities

import "time"

// Client is a business account and the unit of data isolation.
type Client struct {
	ID             string
	BusinessName   string
	BusinessType   string
	PhoneNumber    string
	Email          string
	Address        string
	City           string
	State          string
	Country        string
	WhatsAppNumber string
	Website        string
	CreatedAt      time.Time
}

// BusinessProfile is the onboarding payload used to create a Client.
type BusinessProfile struct {
	BusinessName   string
	BusinessType   string
	PhoneNumber    string
	Email          string
	Address        string
	City           string
	State          string
	WhatsAppNumber string
	Website        string
}
