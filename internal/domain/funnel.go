package domain

import "time"

// DailyFunnelRecord holds the manually entered top-of-funnel counters for one
// profile on one day. Proposta and Fechado are legacy columns superseded by
// the meeting-lead status taxonomy; they are always persisted as zero.
type DailyFunnelRecord struct {
	ID           string    `json:"id"`
	Profile      Profile   `json:"profile"`
	Day          string    `json:"day"`
	Contato      int64     `json:"contato"`
	Qualificacao int64     `json:"qualificacao"`
	Reuniao      int64     `json:"reuniao"`
	Proposta     int64     `json:"proposta"`
	Fechado      int64     `json:"fechado"`
	CreatedAt    time.Time `json:"created_at"`
}
