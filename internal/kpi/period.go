package kpi

import "time"

// ISODate is the wire format for calendar dates. ISO dates compare
// lexicographically in calendar order, so range membership is plain string
// comparison.
const ISODate = "2006-01-02"

// Range is an inclusive [Start, End] window of ISO calendar dates.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CurrentMonth builds the default reporting window: first through last
// calendar day of now's month, in now's location.
func CurrentMonth(now time.Time) Range {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return Range{Start: first.Format(ISODate), End: last.Format(ISODate)}
}

// Normalize swaps the bounds when they arrive inverted. Callers are expected
// to pass start <= end; this keeps membership sane when they don't.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

// Contains reports whether an attribution date falls inside the range. An
// empty date is never a member.
func (r Range) Contains(date string) bool {
	return date != "" && r.Start <= date && date <= r.End
}

// QueryCeiling widens the range's upper bound to at least today. Entities
// whose attribution date can lag their creation (a lead booked in-range but
// closed later) must be fetched up to the ceiling and then attribution-
// filtered, or not-yet-settled records would be missed.
func (r Range) QueryCeiling(today string) string {
	if today > r.End {
		return today
	}
	return r.End
}
