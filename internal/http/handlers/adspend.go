package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salesops/internal/domain"
	"salesops/internal/kpi"
)

// Numeric fields arrive as `any` and go through the total parse: a missing
// or malformed number becomes 0 instead of rejecting the payload.
type adSpendRequest struct {
	ID          string `json:"id"`
	Profile     string `json:"profile"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Impressions any    `json:"impressions"`
	Clicks      any    `json:"clicks"`
	Followers   any    `json:"followers"`
	Spend       any    `json:"spend"`
}

func (a *App) AdSpendList(w http.ResponseWriter, r *http.Request) {
	profile := domain.Profile(r.URL.Query().Get("profile"))
	if !profile.Valid() {
		a.fieldError(w, "profile", "unknown profile")
		return
	}
	rng := rangeFromQuery(r)
	items, err := a.Ads.ListOverlapping(r.Context(), profile, rng.Start, rng.End)
	if err != nil {
		a.Log.Error().Err(err).Msg("list ad spend failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "failed to load ad spend entries")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) AdSpendUpsert(w http.ResponseWriter, r *http.Request) {
	var req adSpendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	profile := domain.Profile(req.Profile)
	if !profile.Valid() {
		a.fieldError(w, "profile", "unknown profile")
		return
	}
	if !validISODate(req.StartDate) {
		a.fieldError(w, "start_date", "date must be YYYY-MM-DD")
		return
	}
	if !validISODate(req.EndDate) {
		a.fieldError(w, "end_date", "date must be YYYY-MM-DD")
		return
	}
	if req.StartDate > req.EndDate {
		a.fieldError(w, "end_date", "campaign end before start")
		return
	}

	entry := &domain.AdSpendEntry{
		ID:          req.ID,
		Profile:     profile,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Impressions: kpi.ParseCount(req.Impressions),
		Clicks:      kpi.ParseCount(req.Clicks),
		Followers:   kpi.ParseCount(req.Followers),
		Spend:       kpi.ParseAmount(req.Spend),
	}
	if entry.Spend < 0 {
		a.fieldError(w, "spend", "spend must not be negative")
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := a.Ads.Upsert(r.Context(), entry); err != nil {
		a.Log.Error().Err(err).Msg("upsert ad spend failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save ad spend entry")
		return
	}
	a.json(w, http.StatusOK, entry)
}

func (a *App) AdSpendDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.Ads.Delete(r.Context(), id); err != nil {
		a.deleteError(w, err, "ad spend entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
