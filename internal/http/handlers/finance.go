package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salesops/internal/domain"
	"salesops/internal/kpi"
	"salesops/internal/middleware"
)

const unlockTTL = 12 * time.Hour

type unlockRequest struct {
	Password string `json:"password"`
}

// FinanceUnlock exchanges the shared finance password for a bearer token.
func (a *App) FinanceUnlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.FinanceSecret)) != 1 {
		a.error(w, http.StatusUnauthorized, "unauthorized", "wrong password")
		return
	}
	token := middleware.IssueFinanceToken(a.TokenSecret, unlockTTL)
	a.json(w, http.StatusOK, map[string]any{"token": token, "expires_in": int(unlockTTL.Seconds())})
}

// FinanceSummary serves the bucketed ledger view for the range.
func (a *App) FinanceSummary(w http.ResponseWriter, r *http.Request) {
	rng := rangeFromQuery(r)
	summary, err := a.KPI.Finance(r.Context(), rng)
	if err != nil {
		a.Log.Error().Err(err).Msg("finance aggregation failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "failed to load finance data")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"range": rng, "summary": summary})
}

type financeEntryRequest struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	Kind        string `json:"kind"`
	ExpenseType string `json:"expense_type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Value       any    `json:"value"`
}

func (a *App) FinanceEntriesList(w http.ResponseWriter, r *http.Request) {
	rng := rangeFromQuery(r)
	items, err := a.Finance.ListInRange(r.Context(), rng.Start, rng.End)
	if err != nil {
		a.Log.Error().Err(err).Msg("list finance entries failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "failed to load finance entries")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) FinanceEntryUpsert(w http.ResponseWriter, r *http.Request) {
	var req financeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if !validISODate(req.Day) {
		a.fieldError(w, "day", "date must be YYYY-MM-DD")
		return
	}
	kind := domain.FinanceKind(req.Kind)
	if !kind.Valid() {
		a.fieldError(w, "kind", "kind must be receita or despesa")
		return
	}
	category := domain.FinanceCategory(req.Category)
	if !category.Valid() {
		a.fieldError(w, "category", "unknown category")
		return
	}
	value := kpi.ParseAmount(req.Value)
	if value < 0 {
		a.fieldError(w, "value", "value must not be negative; kind sets the direction")
		return
	}

	entry := &domain.FinanceEntry{
		ID:          req.ID,
		Day:         req.Day,
		Kind:        kind,
		Category:    category,
		Description: req.Description,
		Value:       value,
	}

	// Expense type is required for despesa and forced null for receita.
	if kind == domain.FinanceDespesa {
		expType := domain.ExpenseType(req.ExpenseType)
		if !expType.Valid() {
			a.fieldError(w, "expense_type", "expense type must be fixa or variavel")
			return
		}
		entry.ExpenseType = &expType
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := a.Finance.Upsert(r.Context(), entry); err != nil {
		a.Log.Error().Err(err).Msg("upsert finance entry failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save finance entry")
		return
	}
	a.json(w, http.StatusOK, entry)
}

func (a *App) FinanceEntryDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.Finance.Delete(r.Context(), id); err != nil {
		a.deleteError(w, err, "finance entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
