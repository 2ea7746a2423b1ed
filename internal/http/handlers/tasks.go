package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salesops/internal/domain"
)

type taskRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Owner   string `json:"owner"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
}

func (a *App) TasksList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Tasks.List(r.Context())
	if err != nil {
		a.Log.Error().Err(err).Msg("list tasks failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "failed to load tasks")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) TasksUpsert(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		a.fieldError(w, "title", "title is required")
		return
	}
	status := domain.TaskStatus(req.Status)
	if req.Status == "" {
		status = domain.TaskPausado
	} else if !status.Valid() {
		a.fieldError(w, "status", "unknown status")
		return
	}

	task := &domain.OpsTask{
		ID:     req.ID,
		Title:  strings.TrimSpace(req.Title),
		Owner:  req.Owner,
		Status: status,
	}
	if req.DueDate != "" {
		if !validISODate(req.DueDate) {
			a.fieldError(w, "due_date", "date must be YYYY-MM-DD")
			return
		}
		task.DueDate = &req.DueDate
	}

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if err := a.Tasks.Upsert(r.Context(), task); err != nil {
		a.Log.Error().Err(err).Msg("upsert task failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save task")
		return
	}
	a.json(w, http.StatusOK, task)
}

func (a *App) TasksDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.Tasks.Delete(r.Context(), id); err != nil {
		a.deleteError(w, err, "task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
