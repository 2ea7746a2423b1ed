package domain

import "time"

// LeadStatus is the closed outcome taxonomy for a meeting lead.
type LeadStatus string

const (
	LeadRealizou LeadStatus = "realizou" // meeting happened
	LeadNoShow   LeadStatus = "no_show"
	LeadVenda    LeadStatus = "venda" // won sale, implies the meeting happened

	// Legacy statuses still present on old rows. Readable, never written.
	LeadMarcou   LeadStatus = "marcou"
	LeadProposta LeadStatus = "proposta"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadRealizou, LeadNoShow, LeadVenda, LeadMarcou, LeadProposta:
		return true
	}
	return false
}

// Writable reports whether the status may be set on new or edited leads.
func (s LeadStatus) Writable() bool {
	switch s {
	case LeadRealizou, LeadNoShow, LeadVenda:
		return true
	}
	return false
}

// MeetingLead is a booked meeting and its outcome. LeadDate may be empty; the
// kpi package resolves the funnel attribution date with the documented
// fallback chain (lead date, then creation date, then today).
//
// Invariant: DealValue and DealDate are non-nil only when Status is venda.
type MeetingLead struct {
	ID         string     `json:"id"`
	Profile    Profile    `json:"profile"`
	LeadDate   string     `json:"lead_date,omitempty"`
	Name       string     `json:"name"`
	Contact    string     `json:"contact,omitempty"`
	Handle     string     `json:"handle,omitempty"`
	AvgRevenue float64    `json:"avg_revenue"`
	Status     LeadStatus `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	DealValue  *float64   `json:"deal_value,omitempty"`
	DealDate   *string    `json:"deal_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
