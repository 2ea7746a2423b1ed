package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"salesops/internal/domain"
	"salesops/internal/kpi"
)

// App is the handler container: repositories, the KPI service and the
// finance-gate secrets, injected in main.
type App struct {
	Log     zerolog.Logger
	KPI     *kpi.Service
	Ads     domain.AdSpendRepository
	Funnel  domain.FunnelRepository
	Leads   domain.LeadRepository
	Finance domain.FinanceRepository
	Tasks   domain.TaskRepository

	FinanceSecret string
	TokenSecret   string
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, msg string) {
	a.json(w, code, map[string]string{"error": slug, "message": msg})
}

// fieldError reports a single rejected field before any write is attempted.
func (a *App) fieldError(w http.ResponseWriter, field, msg string) {
	a.invalid(w, domain.Invalid(field, msg))
}

func (a *App) invalid(w http.ResponseWriter, verr *domain.ValidationError) {
	a.json(w, http.StatusBadRequest, map[string]string{"error": "validation", "field": verr.Field, "message": verr.Message})
}

// deleteError maps a repository delete failure: a missing id is the client's
// mistake, anything else is ours.
func (a *App) deleteError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "no "+what+" with that id")
		return
	}
	a.Log.Error().Err(err).Msg("delete " + what + " failed")
	a.error(w, http.StatusInternalServerError, "internal", "failed to delete "+what)
}

// rangeFromQuery reads ?start&end, defaulting to the current calendar month.
func rangeFromQuery(r *http.Request) kpi.Range {
	rng := kpi.CurrentMonth(time.Now())
	if s := r.URL.Query().Get("start"); s != "" {
		rng.Start = s
	}
	if e := r.URL.Query().Get("end"); e != "" {
		rng.End = e
	}
	return rng.Normalize()
}

func validISODate(s string) bool {
	_, err := time.Parse(kpi.ISODate, s)
	return err == nil
}

func today() string {
	return time.Now().Format(kpi.ISODate)
}
