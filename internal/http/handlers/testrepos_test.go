package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"

	"salesops/internal/domain"
	"salesops/internal/kpi"
)

// In-memory repositories with the same filter semantics as the Postgres
// implementations, so handler tests can exercise real upsert/list round
// trips.

type memAds struct {
	items map[string]domain.AdSpendEntry
	err   error
}

func newMemAds() *memAds { return &memAds{items: map[string]domain.AdSpendEntry{}} }

func (m *memAds) ListOverlapping(_ context.Context, p domain.Profile, start, end string) ([]domain.AdSpendEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.AdSpendEntry
	for _, e := range m.items {
		if e.Profile == p && e.StartDate <= end && e.EndDate >= start {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memAds) Upsert(_ context.Context, e *domain.AdSpendEntry) error {
	m.items[e.ID] = *e
	return nil
}

func (m *memAds) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memFunnel struct {
	items map[string]domain.DailyFunnelRecord
	err   error
}

func newMemFunnel() *memFunnel { return &memFunnel{items: map[string]domain.DailyFunnelRecord{}} }

func (m *memFunnel) ListInRange(_ context.Context, p domain.Profile, start, end string) ([]domain.DailyFunnelRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.DailyFunnelRecord
	for _, rec := range m.items {
		if rec.Profile == p && start <= rec.Day && rec.Day <= end {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memFunnel) Upsert(_ context.Context, rec *domain.DailyFunnelRecord) error {
	m.items[rec.ID] = *rec
	return nil
}

func (m *memFunnel) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memLeads struct {
	items map[string]domain.MeetingLead
	err   error
}

func newMemLeads() *memLeads { return &memLeads{items: map[string]domain.MeetingLead{}} }

func (m *memLeads) ListInWindow(_ context.Context, p domain.Profile, start, end string) ([]domain.MeetingLead, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now().Format(kpi.ISODate)
	window := kpi.Range{Start: start, End: end}
	var out []domain.MeetingLead
	for _, lead := range m.items {
		if lead.Profile != p {
			continue
		}
		inFunnel := window.Contains(kpi.LeadFunnelDate(lead, now))
		deal, ok := kpi.LeadDealDate(lead)
		if inFunnel || (ok && window.Contains(deal)) {
			out = append(out, lead)
		}
	}
	return out, nil
}

func (m *memLeads) Upsert(_ context.Context, lead *domain.MeetingLead) error {
	m.items[lead.ID] = *lead
	return nil
}

func (m *memLeads) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memFinance struct {
	items map[string]domain.FinanceEntry
	err   error
}

func newMemFinance() *memFinance { return &memFinance{items: map[string]domain.FinanceEntry{}} }

func (m *memFinance) ListInRange(_ context.Context, start, end string) ([]domain.FinanceEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.FinanceEntry
	for _, e := range m.items {
		if start <= e.Day && e.Day <= end {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memFinance) Upsert(_ context.Context, e *domain.FinanceEntry) error {
	m.items[e.ID] = *e
	return nil
}

func (m *memFinance) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memTasks struct {
	items map[string]domain.OpsTask
}

func newMemTasks() *memTasks { return &memTasks{items: map[string]domain.OpsTask{}} }

func (m *memTasks) List(context.Context) ([]domain.OpsTask, error) {
	var out []domain.OpsTask
	for _, t := range m.items {
		out = append(out, t)
	}
	return out, nil
}

func (m *memTasks) Upsert(_ context.Context, t *domain.OpsTask) error {
	m.items[t.ID] = *t
	return nil
}

func (m *memTasks) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

var errDown = errors.New("storage unavailable")

// deleteRequest builds a DELETE request carrying the id the way the router
// would, so delete handlers can be called directly.
func deleteRequest(path, id string) *http.Request {
	req := httptest.NewRequest("DELETE", path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newTestApp() (*App, *memAds, *memFunnel, *memLeads, *memFinance, *memTasks) {
	ads := newMemAds()
	funnel := newMemFunnel()
	leads := newMemLeads()
	finance := newMemFinance()
	tasks := newMemTasks()
	app := &App{
		KPI:           kpi.NewService(ads, funnel, leads, finance),
		Ads:           ads,
		Funnel:        funnel,
		Leads:         leads,
		Finance:       finance,
		Tasks:         tasks,
		FinanceSecret: "segredo",
		TokenSecret:   "token-secret",
	}
	return app, ads, funnel, leads, finance, tasks
}
