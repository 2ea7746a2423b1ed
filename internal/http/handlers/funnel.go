package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salesops/internal/domain"
	"salesops/internal/kpi"
)

type funnelRequest struct {
	ID           string `json:"id"`
	Profile      string `json:"profile"`
	Day          string `json:"day"`
	Contato      any    `json:"contato"`
	Qualificacao any    `json:"qualificacao"`
	Reuniao      any    `json:"reuniao"`
}

func (a *App) FunnelList(w http.ResponseWriter, r *http.Request) {
	profile := domain.Profile(r.URL.Query().Get("profile"))
	if !profile.Valid() {
		a.fieldError(w, "profile", "unknown profile")
		return
	}
	rng := rangeFromQuery(r)
	items, err := a.Funnel.ListInRange(r.Context(), profile, rng.Start, rng.End)
	if err != nil {
		a.Log.Error().Err(err).Msg("list funnel failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "failed to load funnel records")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) FunnelUpsert(w http.ResponseWriter, r *http.Request) {
	var req funnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	profile := domain.Profile(req.Profile)
	if !profile.Valid() {
		a.fieldError(w, "profile", "unknown profile")
		return
	}
	if !validISODate(req.Day) {
		a.fieldError(w, "day", "date must be YYYY-MM-DD")
		return
	}

	rec := &domain.DailyFunnelRecord{
		ID:           req.ID,
		Profile:      profile,
		Day:          req.Day,
		Contato:      kpi.ParseCount(req.Contato),
		Qualificacao: kpi.ParseCount(req.Qualificacao),
		Reuniao:      kpi.ParseCount(req.Reuniao),
		// Proposta/Fechado stay zero: superseded by lead status.
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := a.Funnel.Upsert(r.Context(), rec); err != nil {
		a.Log.Error().Err(err).Msg("upsert funnel failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save funnel record")
		return
	}
	a.json(w, http.StatusOK, rec)
}

func (a *App) FunnelDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.Funnel.Delete(r.Context(), id); err != nil {
		a.deleteError(w, err, "funnel record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
