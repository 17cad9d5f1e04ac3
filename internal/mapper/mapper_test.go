package mapper

import (
	"testing"

	"whatsapp-crm/internal/dto"
	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/gate"

	"github.com/stretchr/testify/require"
)

func TestToLeadsNeverNil(t *testing.T) {
	require.NotNil(t, ToLeads(nil))

	leads := ToLeads([]entities.Lead{{ID: "l1", Status: entities.LeadQualified}})
	require.Len(t, leads, 1)
	require.Equal(t, "qualified", leads[0].Status)
	require.NotNil(t, leads[0].Tags)
}

func TestToGateDecision(t *testing.T) {
	d := gate.Decide(&entities.Identity{UserID: "u1"}, nil, gate.Classify("/leads"))

	out := ToGateDecision("/leads", d)
	require.Equal(t, "redirect_onboarding", out.Outcome)
	require.Equal(t, gate.OnboardingPath, out.Location)
	require.Equal(t, "protected", out.Class)
	require.True(t, out.Authenticated)
	require.False(t, out.Onboarded)
}

func TestToAnalytics(t *testing.T) {
	empty := ToAnalytics(entities.Analytics{})
	require.NotNil(t, empty.LeadsByMonth)
	require.NotNil(t, empty.LeadsBySource)
	require.NotNil(t, empty.CampaignPerformance)

	out := ToAnalytics(entities.Analytics{
		TotalLeads:          4,
		ConvertedLeads:      1,
		ConversionRate:      25,
		MessageReadRate:     50,
		LeadsByMonth:        []entities.MonthlyLeads{{Month: "2024-03", Leads: 4, Converted: 1}},
		LeadsBySource:       []entities.SourceCount{{Source: "whatsapp", Count: 3}, {Source: "unknown", Count: 1}},
		CampaignPerformance: []entities.CampaignPerformance{{Name: "Diwali", Sent: 10, Delivered: 8, Read: 4, Replied: 1}},
	})
	require.Equal(t, int64(4), out.TotalLeads)
	require.Equal(t, 25.0, out.ConversionRate)
	require.Equal(t, []dto.MonthlyLeads{{Month: "2024-03", Leads: 4, Converted: 1}}, out.LeadsByMonth)
	require.Len(t, out.LeadsBySource, 2)
	require.Equal(t, dto.CampaignPerformance{Name: "Diwali", Sent: 10, Delivered: 8, Read: 4, Replied: 1}, out.CampaignPerformance[0])
}
