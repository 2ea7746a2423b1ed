package handlers

import (
	"net/http"

	"salesops/internal/domain"
)

// DashboardOverview serves the funnel cards for both profiles over the
// requested range. A failed fetch abandons the whole pass; the client keeps
// showing its previous values next to the error message.
func (a *App) DashboardOverview(w http.ResponseWriter, r *http.Request) {
	rng := rangeFromQuery(r)
	views, err := a.KPI.Overview(r.Context(), rng)
	if err != nil {
		a.Log.Error().Err(err).Msg("overview aggregation failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "failed to load dashboard data")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"range": rng, "profiles": views})
}

// SalesOverview serves one profile's paid-traffic KPIs.
func (a *App) SalesOverview(w http.ResponseWriter, r *http.Request) {
	profile := domain.Profile(r.URL.Query().Get("profile"))
	if !profile.Valid() {
		a.fieldError(w, "profile", "unknown profile")
		return
	}
	rng := rangeFromQuery(r)
	view, err := a.KPI.Sales(r.Context(), rng, profile)
	if err != nil {
		a.Log.Error().Err(err).Str("profile", string(profile)).Msg("sales aggregation failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "failed to load sales data")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"range": rng, "view": view})
}
