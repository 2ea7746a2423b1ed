package kpi

import "salesops/internal/domain"

// Attribution rules: which date field decides whether a record counts toward
// a reporting period. Funnel records use their day. Leads use the lead date
// for funnel membership and the deal date for revenue membership; the two
// are independent, so a deal closed in February from a January lead counts
// toward February revenue and January funnel.

// LeadFunnelDate resolves the funnel attribution date of a lead with the
// documented precedence: lead date, then creation date, then today. A lead
// is never silently excluded from the funnel for lacking a date.
func LeadFunnelDate(lead domain.MeetingLead, today string) string {
	if lead.LeadDate != "" {
		return lead.LeadDate
	}
	if !lead.CreatedAt.IsZero() {
		return lead.CreatedAt.Format(ISODate)
	}
	return today
}

// LeadDealDate resolves the revenue attribution date of a lead. Only won
// sales carry one; a venda record missing its deal date is reported absent
// and the caller drops it from revenue views. No fallback here: this is the
// one place where missing data excludes a record rather than defaulting.
func LeadDealDate(lead domain.MeetingLead) (string, bool) {
	if lead.Status != domain.LeadVenda {
		return "", false
	}
	if lead.DealDate == nil || *lead.DealDate == "" {
		return "", false
	}
	return *lead.DealDate, true
}

// LeadsInRange filters leads to funnel membership in rng.
func LeadsInRange(leads []domain.MeetingLead, rng Range, today string) []domain.MeetingLead {
	var out []domain.MeetingLead
	for _, lead := range leads {
		if rng.Contains(LeadFunnelDate(lead, today)) {
			out = append(out, lead)
		}
	}
	return out
}

// SalesInRange filters leads to won sales whose deal date falls in rng.
// Changing a lead date never changes this membership.
func SalesInRange(leads []domain.MeetingLead, rng Range) []domain.MeetingLead {
	var out []domain.MeetingLead
	for _, lead := range leads {
		if day, ok := LeadDealDate(lead); ok && rng.Contains(day) {
			out = append(out, lead)
		}
	}
	return out
}
