package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salesops/internal/domain"
	"salesops/internal/kpi"
)

type leadRequest struct {
	ID         string `json:"id"`
	Profile    string `json:"profile"`
	LeadDate   string `json:"lead_date"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Handle     string `json:"handle"`
	AvgRevenue any    `json:"avg_revenue"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	DealValue  any    `json:"deal_value"`
	DealDate   string `json:"deal_date"`
}

func (a *App) LeadsList(w http.ResponseWriter, r *http.Request) {
	profile := domain.Profile(r.URL.Query().Get("profile"))
	if !profile.Valid() {
		a.fieldError(w, "profile", "unknown profile")
		return
	}
	rng := rangeFromQuery(r)
	// The fetch window widens past the requested end so deals closed after it
	// are not missed. The response reports the window actually served, which
	// may include leads dated after the requested end.
	window := kpi.Range{Start: rng.Start, End: rng.QueryCeiling(today())}
	items, err := a.Leads.ListInWindow(r.Context(), profile, window.Start, window.End)
	if err != nil {
		a.Log.Error().Err(err).Msg("list leads failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "failed to load leads")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"window": window, "items": items})
}

func (a *App) LeadsUpsert(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	profile := domain.Profile(req.Profile)
	if !profile.Valid() {
		a.fieldError(w, "profile", "unknown profile")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		a.fieldError(w, "name", "name is required")
		return
	}
	status := domain.LeadStatus(req.Status)
	if !status.Writable() {
		if status.Valid() {
			a.fieldError(w, "status", "legacy status is read-only")
		} else {
			a.fieldError(w, "status", "unknown status")
		}
		return
	}
	if req.LeadDate != "" && !validISODate(req.LeadDate) {
		a.fieldError(w, "lead_date", "date must be YYYY-MM-DD")
		return
	}

	lead := &domain.MeetingLead{
		ID:         req.ID,
		Profile:    profile,
		LeadDate:   req.LeadDate,
		Name:       strings.TrimSpace(req.Name),
		Contact:    req.Contact,
		Handle:     req.Handle,
		AvgRevenue: kpi.ParseAmount(req.AvgRevenue),
		Status:     status,
		Notes:      req.Notes,
	}

	// Deal fields exist only on won sales. For a venda the value defaults to
	// 0 and the closing date to today; for anything else both are forced
	// null regardless of what the client sent.
	if status == domain.LeadVenda {
		value := kpi.ParseAmount(req.DealValue)
		if value < 0 {
			a.fieldError(w, "deal_value", "deal value must not be negative")
			return
		}
		day := req.DealDate
		if day == "" {
			day = today()
		} else if !validISODate(day) {
			a.fieldError(w, "deal_date", "date must be YYYY-MM-DD")
			return
		}
		lead.DealValue = &value
		lead.DealDate = &day
	}

	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if err := a.Leads.Upsert(r.Context(), lead); err != nil {
		a.Log.Error().Err(err).Msg("upsert lead failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save lead")
		return
	}
	a.json(w, http.StatusOK, lead)
}

func (a *App) LeadsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.Leads.Delete(r.Context(), id); err != nil {
		a.deleteError(w, err, "lead")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
