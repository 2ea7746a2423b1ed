package kpi

import "salesops/internal/domain"

// OutcomeCounts are the derived stage memberships of a lead set.
type OutcomeCounts struct {
	Realized int `json:"realizadas"`
	Sales    int `json:"vendas"`
}

// ClassifyOutcomes counts realized meetings and won sales over leads already
// filtered to the range. A won sale is definitionally a realized meeting, so
// venda counts toward both buckets; excluding won deals from "meeting
// happened" would double-penalize conversion tracking. Realized >= Sales
// always holds.
func ClassifyOutcomes(leads []domain.MeetingLead) OutcomeCounts {
	var c OutcomeCounts
	for _, lead := range leads {
		switch lead.Status {
		case domain.LeadRealizou:
			c.Realized++
		case domain.LeadVenda:
			c.Realized++
			c.Sales++
		}
	}
	return c
}
