package kpi

import "salesops/internal/domain"

// SpendTotals are the element-wise sums over a profile's campaign entries in
// range.
type SpendTotals struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Followers   int64   `json:"followers"`
}

// AggregateSpend sums campaign fields with the same 0-coercion as the funnel
// aggregator.
func AggregateSpend(entries []domain.AdSpendEntry) SpendTotals {
	var t SpendTotals
	for _, e := range entries {
		t.Spend += clamp0f(e.Spend)
		t.Impressions += clamp0(e.Impressions)
		t.Clicks += clamp0(e.Clicks)
		t.Followers += clamp0(e.Followers)
	}
	return t
}

// RevenueInRange sums deal values over won sales whose deal date falls in
// rng. Venda records without a deal date are excluded, not defaulted.
func RevenueInRange(leads []domain.MeetingLead, rng Range) float64 {
	var total float64
	for _, lead := range SalesInRange(leads, rng) {
		if lead.DealValue != nil {
			total += clamp0f(*lead.DealValue)
		}
	}
	return total
}

// CTR is click-through rate as a percentage value.
func (t SpendTotals) CTR() float64 {
	return SafeDivide(float64(t.Clicks)*100, float64(t.Impressions))
}

// CostPerFollower is spend divided by followers gained.
func (t SpendTotals) CostPerFollower() float64 {
	return SafeDivide(t.Spend, float64(t.Followers))
}

// ROI returns return on investment as a signed percentage. Zero spend maps
// to exactly 0; otherwise the result keeps its sign, so zero revenue against
// positive spend reads -100.
func ROI(spend, revenue float64) float64 {
	if spend == 0 {
		return 0
	}
	return (revenue - spend) / spend * 100
}

// FormatROI renders ROI with the zero-spend guard surfaced as the literal
// "0%" rather than an unsigned "0.0%".
func FormatROI(spend, revenue float64) string {
	if spend == 0 {
		return "0%"
	}
	return FormatPercent(ROI(spend, revenue))
}

// CostPerOutcome relates spend to funnel-attributed counts for the same
// profile and range. Denominators come from funnel attribution dates, not
// deal dates.
type CostPerOutcome struct {
	PerConversation  float64 `json:"por_conversa"`
	PerBookedMeeting float64 `json:"por_reuniao_marcada"`
	PerSale          float64 `json:"por_venda"`
}

// Costs computes cost-per-stage figures. PerSale is an explicit 0 when there
// are no sales yet; an infinity-style guard would imply infinite cost where
// there is simply nothing sold.
func Costs(spend float64, contato, booked int64, sales int) CostPerOutcome {
	c := CostPerOutcome{
		PerConversation:  SafeDivide(spend, float64(contato)),
		PerBookedMeeting: SafeDivide(spend, float64(booked)),
	}
	if sales > 0 {
		c.PerSale = SafeDivide(spend, float64(sales))
	}
	return c
}
