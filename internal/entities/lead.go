// Package entities contains core business entities.
package entities

import "time"

// LeadStatus enumerates the lead pipeline states.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

// Valid reports whether s is a known lead status.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadLost:
		return true
	}
	return false
}

// Lead is an inbound customer contact owned by a client.
type Lead struct {
	ID            string
	ClientID      string
	CustomerName  string
	CustomerPhone string
	Source        string
	Status        LeadStatus
	Message       string
	Tags          []string
	CreatedAt     time.Time
}

// LeadFilter narrows lead listings. Empty fields match everything.
type LeadFilter struct {
	Status LeadStatus
	Source string
	Query  string
	Limit  int
}
