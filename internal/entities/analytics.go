// Package entities contains core business entities.
package entities

// Analytics aggregates leads and campaigns of a single client.
type Analytics struct {
	TotalLeads          int64
	ConvertedLeads      int64
	ConversionRate      float64
	MessageReadRate     float64
	LeadsByMonth        []MonthlyLeads
	LeadsBySource       []SourceCount
	CampaignPerformance []CampaignPerformance
}

// MonthlyLeads counts leads created in a calendar month (YYYY-MM).
type MonthlyLeads struct {
	Month     string
	Leads     int64
	Converted int64
}

// SourceCount counts leads by acquisition source.
type SourceCount struct {
	Source string
	Count  int64
}

// CampaignPerformance exposes delivery counters of a campaign.
type CampaignPerformance struct {
	Name      string
	Sent      int64
	Delivered int64
	Read      int64
	Replied   int64
}

// Overview is the dashboard landing snapshot.
type Overview struct {
	Client          Client
	TotalLeads      int64
	NewLeads        int64
	ActiveCampaigns int64
	RecentLeads     []Lead
}
