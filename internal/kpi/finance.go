package kpi

import "salesops/internal/domain"

// FinanceSummary buckets ledger entries for a range into revenue and fixed
// versus variable expense, with profit and margin derived.
type FinanceSummary struct {
	Revenue      float64 `json:"receita"`
	FixedCost    float64 `json:"despesa_fixa"`
	VariableCost float64 `json:"despesa_variavel"`
	Profit       float64 `json:"lucro"`
	Margin       string  `json:"margem"`
}

// SummarizeFinance splits entries by kind and expense type. Values are
// sign-less; kind determines direction. Margin is "0%" when there is no
// revenue.
func SummarizeFinance(entries []domain.FinanceEntry) FinanceSummary {
	var s FinanceSummary
	for _, e := range entries {
		switch e.Kind {
		case domain.FinanceReceita:
			s.Revenue += clamp0f(e.Value)
		case domain.FinanceDespesa:
			if e.ExpenseType == nil {
				continue
			}
			switch *e.ExpenseType {
			case domain.ExpenseFixa:
				s.FixedCost += clamp0f(e.Value)
			case domain.ExpenseVariavel:
				s.VariableCost += clamp0f(e.Value)
			}
		}
	}
	s.Profit = s.Revenue - (s.FixedCost + s.VariableCost)
	s.Margin = RatePercent(s.Profit, s.Revenue)
	return s
}
