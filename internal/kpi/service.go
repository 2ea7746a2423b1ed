package kpi

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"salesops/internal/domain"
)

// Service assembles the dashboard views. Every view is a pure function of
// (range, profile, fetched records): fetches fan out concurrently, and if
// any of them fails the whole pass is abandoned so callers never see a
// partially recomputed set of KPIs.
type Service struct {
	ads     domain.AdSpendRepository
	funnel  domain.FunnelRepository
	leads   domain.LeadRepository
	finance domain.FinanceRepository
	now     func() time.Time
}

func NewService(ads domain.AdSpendRepository, funnel domain.FunnelRepository, leads domain.LeadRepository, finance domain.FinanceRepository) *Service {
	return &Service{ads: ads, funnel: funnel, leads: leads, finance: finance, now: time.Now}
}

// ProfileOverview is one profile's funnel card: stage totals, derived
// outcome counts and the stage-to-stage conversion chain.
type ProfileOverview struct {
	Profile  domain.Profile  `json:"profile"`
	Funnel   FunnelTotals    `json:"funil"`
	Outcomes OutcomeCounts   `json:"resultados"`
	Rates    ConversionRates `json:"conversoes"`
}

// Overview computes the funnel view for every profile over rng.
func (s *Service) Overview(ctx context.Context, rng Range) ([]ProfileOverview, error) {
	rng = rng.Normalize()
	today := s.now().Format(ISODate)
	ceiling := rng.QueryCeiling(today)

	funnels := make([][]domain.DailyFunnelRecord, len(domain.Profiles))
	leadSets := make([][]domain.MeetingLead, len(domain.Profiles))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range domain.Profiles {
		i, p := i, p
		g.Go(func() error {
			recs, err := s.funnel.ListInRange(gctx, p, rng.Start, rng.End)
			if err != nil {
				return fmt.Errorf("funnel %s: %w", p, err)
			}
			funnels[i] = recs
			return nil
		})
		g.Go(func() error {
			leads, err := s.leads.ListInWindow(gctx, p, rng.Start, ceiling)
			if err != nil {
				return fmt.Errorf("leads %s: %w", p, err)
			}
			leadSets[i] = leads
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]ProfileOverview, 0, len(domain.Profiles))
	for i, p := range domain.Profiles {
		totals := AggregateFunnel(funnels[i])
		outcomes := ClassifyOutcomes(LeadsInRange(leadSets[i], rng, today))
		rates := Conversions(StageCounts{
			Contato:          totals.Contato,
			Qualificacao:     totals.Qualificacao,
			ReuniaoMarcada:   totals.Reuniao,
			ReuniaoRealizada: int64(outcomes.Realized),
			Venda:            int64(outcomes.Sales),
		})
		out = append(out, ProfileOverview{Profile: p, Funnel: totals, Outcomes: outcomes, Rates: rates})
	}
	return out, nil
}

// SalesView is one profile's paid-traffic card: spend totals, attributed
// revenue and the derived cost/return KPIs. Currency strings are the pt-BR
// display rendering of the float fields next to them.
type SalesView struct {
	Profile         domain.Profile `json:"profile"`
	Totals          SpendTotals    `json:"totais"`
	Revenue         float64        `json:"receita"`
	SpendDisplay    string         `json:"investimento_fmt"`
	RevenueDisplay  string         `json:"receita_fmt"`
	CTR             string         `json:"ctr"`
	CostPerFollower string         `json:"custo_por_seguidor"`
	ROI             string         `json:"roi"`
	Costs           CostPerOutcome `json:"custos"`
	Sales           int            `json:"vendas"`
}

// Sales computes the paid-traffic view for one profile. Cost-per-outcome
// denominators use funnel attribution dates; revenue uses deal dates. Both
// come out of the same fetched lead window.
func (s *Service) Sales(ctx context.Context, rng Range, profile domain.Profile) (*SalesView, error) {
	rng = rng.Normalize()
	today := s.now().Format(ISODate)
	ceiling := rng.QueryCeiling(today)

	var (
		entries []domain.AdSpendEntry
		records []domain.DailyFunnelRecord
		leads   []domain.MeetingLead
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.ads.ListOverlapping(gctx, profile, rng.Start, rng.End)
		if err != nil {
			return fmt.Errorf("ad spend %s: %w", profile, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.funnel.ListInRange(gctx, profile, rng.Start, rng.End)
		if err != nil {
			return fmt.Errorf("funnel %s: %w", profile, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leads, err = s.leads.ListInWindow(gctx, profile, rng.Start, ceiling)
		if err != nil {
			return fmt.Errorf("leads %s: %w", profile, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := AggregateSpend(entries)
	funnel := AggregateFunnel(records)
	outcomes := ClassifyOutcomes(LeadsInRange(leads, rng, today))
	revenue := RevenueInRange(leads, rng)

	return &SalesView{
		Profile:         profile,
		Totals:          totals,
		Revenue:         revenue,
		SpendDisplay:    FormatCurrency(totals.Spend),
		RevenueDisplay:  FormatCurrency(revenue),
		CTR:             FormatPercent(totals.CTR()),
		CostPerFollower: FormatCurrency(totals.CostPerFollower()),
		ROI:             FormatROI(totals.Spend, revenue),
		Costs:           Costs(totals.Spend, funnel.Contato, funnel.Reuniao, outcomes.Sales),
		Sales:           outcomes.Sales,
	}, nil
}

// Finance computes the organization-wide ledger summary for rng.
func (s *Service) Finance(ctx context.Context, rng Range) (*FinanceSummary, error) {
	rng = rng.Normalize()
	entries, err := s.finance.ListInRange(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("finance entries: %w", err)
	}
	summary := SummarizeFinance(entries)
	return &summary, nil
}
