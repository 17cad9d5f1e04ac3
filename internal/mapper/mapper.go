// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"whatsapp-crm/internal/dto"
	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/gate"
)

// FromOnboardingRequest builds an entities.BusinessProfile from transport DTO.
func FromOnboardingRequest(src dto.OnboardingRequest) entities.BusinessProfile {
	return entities.BusinessProfile{
		BusinessName:   src.BusinessName,
		BusinessType:   src.BusinessType,
		PhoneNumber:    src.PhoneNumber,
		Email:          src.Email,
		Address:        src.Address,
		City:           src.City,
		State:          src.State,
		WhatsAppNumber: src.WhatsAppNumber,
		Website:        src.Website,
	}
}

// ToClient maps entities.Client to transport model.
func ToClient(c entities.Client) dto.Client {
	return dto.Client{
		ID:             c.ID,
		BusinessName:   c.BusinessName,
		BusinessType:   c.BusinessType,
		PhoneNumber:    c.PhoneNumber,
		Email:          c.Email,
		Address:        c.Address,
		City:           c.City,
		State:          c.State,
		Country:        c.Country,
		WhatsAppNumber: c.WhatsAppNumber,
		Website:        c.Website,
		CreatedAt:      c.CreatedAt,
	}
}

// ToLeads maps leads to transport models. The result is never nil.
func ToLeads(leads []entities.Lead) []dto.Lead {
	out := make([]dto.Lead, 0, len(leads))
	for _, l := range leads {
		tags := l.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, dto.Lead{
			ID:            l.ID,
			CustomerName:  l.CustomerName,
			CustomerPhone: l.CustomerPhone,
			Source:        l.Source,
			Status:        string(l.Status),
			Message:       l.Message,
			Tags:          tags,
			CreatedAt:     l.CreatedAt,
		})
	}
	return out
}

// ToCampaigns maps campaigns to transport models. The result is never nil.
func ToCampaigns(campaigns []entities.Campaign) []dto.Campaign {
	out := make([]dto.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, dto.Campaign{
			ID:              c.ID,
			Name:            c.Name,
			Status:          string(c.Status),
			MessageTemplate: c.MessageTemplate,
			TotalSent:       c.TotalSent,
			TotalDelivered:  c.TotalDelivered,
			TotalRead:       c.TotalRead,
			Replied:         c.Replied,
			ScheduledAt:     c.ScheduledAt,
			CreatedAt:       c.CreatedAt,
		})
	}
	return out
}

// ToOverview maps the dashboard snapshot.
func ToOverview(o entities.Overview) dto.Overview {
	return dto.Overview{
		Client:          ToClient(o.Client),
		TotalLeads:      o.TotalLeads,
		NewLeads:        o.NewLeads,
		ActiveCampaigns: o.ActiveCampaigns,
		RecentLeads:     ToLeads(o.RecentLeads),
	}
}

// ToAnalytics maps the aggregates; empty series become empty arrays.
func ToAnalytics(a entities.Analytics) dto.Analytics {
	out := dto.Analytics{
		TotalLeads:          a.TotalLeads,
		ConvertedLeads:      a.ConvertedLeads,
		ConversionRate:      a.ConversionRate,
		MessageReadRate:     a.MessageReadRate,
		LeadsByMonth:        make([]dto.MonthlyLeads, 0, len(a.LeadsByMonth)),
		LeadsBySource:       make([]dto.SourceCount, 0, len(a.LeadsBySource)),
		CampaignPerformance: make([]dto.CampaignPerformance, 0, len(a.CampaignPerformance)),
	}
	for _, m := range a.LeadsByMonth {
		out.LeadsByMonth = append(out.LeadsByMonth, dto.MonthlyLeads{Month: m.Month, Leads: m.Leads, Converted: m.Converted})
	}
	for _, s := range a.LeadsBySource {
		out.LeadsBySource = append(out.LeadsBySource, dto.SourceCount{Source: s.Source, Count: s.Count})
	}
	for _, c := range a.CampaignPerformance {
		out.CampaignPerformance = append(out.CampaignPerformance, dto.CampaignPerformance{
			Name:      c.Name,
			Sent:      c.Sent,
			Delivered: c.Delivered,
			Read:      c.Read,
			Replied:   c.Replied,
		})
	}
	return out
}

// ToGateDecision maps a gate decision for the client-side guard.
func ToGateDecision(path string, d gate.Decision) dto.GateDecision {
	return dto.GateDecision{
		Path:          path,
		Class:         d.Class.String(),
		Outcome:       string(d.Outcome),
		Location:      d.Location,
		Authenticated: d.Identity != nil,
		Onboarded:     d.Membership != nil,
	}
}
