package domain

import "time"

// AdSpendEntry is one paid-traffic campaign window for a profile. Dates are
// ISO calendar dates (YYYY-MM-DD); a campaign counts toward a reporting
// period when its [StartDate, EndDate] window overlaps the period.
type AdSpendEntry struct {
	ID          string    `json:"id"`
	Profile     Profile   `json:"profile"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Followers   int64     `json:"followers"`
	Spend       float64   `json:"spend"`
	CreatedAt   time.Time `json:"created_at"`
}
