package domain

import (
	"math"
	"sort"

	"whatsapp-crm/internal/entities"
)

// BuildAnalytics computes the dashboard aggregates. It performs no I/O.
func BuildAnalytics(leads []entities.Lead, campaigns []entities.Campaign) entities.Analytics {
	a := entities.Analytics{
		TotalLeads:          int64(len(leads)),
		LeadsByMonth:        make([]entities.MonthlyLeads, 0),
		LeadsBySource:       make([]entities.SourceCount, 0),
		CampaignPerformance: make([]entities.CampaignPerformance, 0, len(campaigns)),
	}

	months := make(map[string]*entities.MonthlyLeads)
	sources := make(map[string]int64)
	for _, l := range leads {
		converted := l.Status == entities.LeadConverted
		if converted {
			a.ConvertedLeads++
		}

		key := l.CreatedAt.UTC().Format("2006-01")
		m, ok := months[key]
		if !ok {
			m = &entities.MonthlyLeads{Month: key}
			months[key] = m
		}
		m.Leads++
		if converted {
			m.Converted++
		}

		source := l.Source
		if source == "" {
			source = "unknown"
		}
		sources[source]++
	}

	for _, m := range months {
		a.LeadsByMonth = append(a.LeadsByMonth, *m)
	}
	sort.Slice(a.LeadsByMonth, func(i, j int) bool {
		return a.LeadsByMonth[i].Month < a.LeadsByMonth[j].Month
	})

	for s, n := range sources {
		a.LeadsBySource = append(a.LeadsBySource, entities.SourceCount{Source: s, Count: n})
	}
	sort.Slice(a.LeadsBySource, func(i, j int) bool {
		if a.LeadsBySource[i].Count != a.LeadsBySource[j].Count {
			return a.LeadsBySource[i].Count > a.LeadsBySource[j].Count
		}
		return a.LeadsBySource[i].Source < a.LeadsBySource[j].Source
	})

	var delivered, read int64
	for _, c := range campaigns {
		delivered += c.TotalDelivered
		read += c.TotalRead
		a.CampaignPerformance = append(a.CampaignPerformance, entities.CampaignPerformance{
			Name:      c.Name,
			Sent:      c.TotalSent,
			Delivered: c.TotalDelivered,
			Read:      c.TotalRead,
			Replied:   c.Replied,
		})
	}

	if a.TotalLeads > 0 {
		a.ConversionRate = percent(a.ConvertedLeads, a.TotalLeads)
	}
	a.MessageReadRate = percent(read, max(1, delivered))

	return a
}

// percent rounds part/whole to one decimal place.
func percent(part, whole int64) float64 {
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
