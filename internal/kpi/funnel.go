package kpi

import "salesops/internal/domain"

// FunnelTotals are the summed hand-entered counters for one profile over a
// range.
type FunnelTotals struct {
	Contato      int64 `json:"contato"`
	Qualificacao int64 `json:"qualificacao"`
	Reuniao      int64 `json:"reuniao"`
}

// AggregateFunnel sums stage counters element-wise over records already
// filtered to the range by day. A corrupt or negative field contributes 0
// for that field only, never dropping the whole record. Summation is
// order-independent.
func AggregateFunnel(records []domain.DailyFunnelRecord) FunnelTotals {
	var t FunnelTotals
	for _, rec := range records {
		t.Contato += clamp0(rec.Contato)
		t.Qualificacao += clamp0(rec.Qualificacao)
		t.Reuniao += clamp0(rec.Reuniao)
	}
	return t
}
