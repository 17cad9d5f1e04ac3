// Package dto holds the JSON shapes of the HTTP API.
package dto

import "time"

// ErrorCode is the machine readable error kind.
type ErrorCode string

const (
	InvalidArgument         ErrorCode = "INVALID_ARGUMENT"
	NotAuthenticated        ErrorCode = "NOT_AUTHENTICATED"
	NotFound                ErrorCode = "NOT_FOUND"
	AlreadyOnboarded        ErrorCode = "ALREADY_ONBOARDED"
	DuplicateWhatsAppNumber ErrorCode = "DUPLICATE_WHATSAPP_NUMBER"
	LinkFailed              ErrorCode = "LINK_FAILED"
	Internal                ErrorCode = "INTERNAL"
)

// ErrorBody is the payload of ErrorResponse.
type ErrorBody struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable,omitempty"`
}

// ErrorResponse wraps every error reply.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// OnboardingRequest is accepted as JSON or as a form post.
type OnboardingRequest struct {
	BusinessName   string `json:"business_name" form:"business_name"`
	BusinessType   string `json:"business_type" form:"business_type"`
	PhoneNumber    string `json:"phone_number" form:"phone_number"`
	Email          string `json:"email" form:"email"`
	Address        string `json:"address" form:"address"`
	City           string `json:"city" form:"city"`
	State          string `json:"state" form:"state"`
	WhatsAppNumber string `json:"whatsapp_number" form:"whatsapp_number"`
	Website        string `json:"website" form:"website"`
}

type OnboardingContext struct {
	Email       string `json:"email"`
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
}

type NumberCheck struct {
	WhatsAppNumber string `json:"whatsapp_number"`
	Available      bool   `json:"available"`
}

type Client struct {
	ID             string    `json:"id"`
	BusinessName   string    `json:"business_name"`
	BusinessType   string    `json:"business_type,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Email          string    `json:"email,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Country        string    `json:"country,omitempty"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	Website        string    `json:"website,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Lead struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Source        string    `json:"source"`
	Status        string    `json:"status"`
	Message       string    `json:"message,omitempty"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
}

type Campaign struct {
	ID              string     `json:"id"`
	Name            string     `json:"campaign_name"`
	Status          string     `json:"status"`
	MessageTemplate string     `json:"message_template,omitempty"`
	TotalSent       int64      `json:"total_sent"`
	TotalDelivered  int64      `json:"total_delivered"`
	TotalRead       int64      `json:"total_read"`
	Replied         int64      `json:"replied"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Overview struct {
	Client          Client `json:"client"`
	TotalLeads      int64  `json:"total_leads"`
	NewLeads        int64  `json:"new_leads"`
	ActiveCampaigns int64  `json:"active_campaigns"`
	RecentLeads     []Lead `json:"recent_leads"`
}

type Analytics struct {
	TotalLeads          int64                 `json:"total_leads"`
	ConvertedLeads      int64                 `json:"converted_leads"`
	ConversionRate      float64               `json:"conversion_rate"`
	MessageReadRate     float64               `json:"message_read_rate"`
	LeadsByMonth        []MonthlyLeads        `json:"leads_by_month"`
	LeadsBySource       []SourceCount         `json:"leads_by_source"`
	CampaignPerformance []CampaignPerformance `json:"campaign_performance"`
}

type MonthlyLeads struct {
	Month     string `json:"month"`
	Leads     int64  `json:"leads"`
	Converted int64  `json:"converted"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

type CampaignPerformance struct {
	Name      string `json:"name"`
	Sent      int64  `json:"sent"`
	Delivered int64  `json:"delivered"`
	Read      int64  `json:"read"`
	Replied   int64  `json:"replied"`
}

type LeadList struct {
	Leads []Lead `json:"leads"`
}

// LeadSnapshot is one event of the lead stream.
type LeadSnapshot struct {
	Leads       []Lead    `json:"leads"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// StreamRedirect ends a stream whose session no longer grants access.
type StreamRedirect struct {
	Location string `json:"location"`
}

type CampaignList struct {
	Campaigns []Campaign `json:"campaigns"`
}

type LoginResponse struct {
	AuthorizeURL string `json:"authorize_url"`
}

// GateDecision is returned to the client-side guard.
type GateDecision struct {
	Path          string `json:"path"`
	Class         string `json:"class"`
	Outcome       string `json:"outcome"`
	Location      string `json:"location,omitempty"`
	Authenticated bool   `json:"authenticated"`
	Onboarded     bool   `json:"onboarded"`
}
