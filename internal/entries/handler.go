package entries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bdevic/habitstats/internal/habits"
	"github.com/bdevic/habitstats/internal/telemetry/tracing"
	"github.com/bdevic/habitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=entries_test

type entriesService interface {
	LogEntry(ctx context.Context, params LogEntryParams) (*LogEntryResult, error)
}

type LogEntryRequest struct {
	HabitID   int            `json:"habitId"`
	Day       string         `json:"day,omitempty"`
	Value     map[string]any `json:"value"`
	Notes     string         `json:"notes,omitempty"`
	Completed *bool          `json:"completed,omitempty"`
}

type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
}

type Handler struct {
	service entriesService
	repo    entriesRepo
}

func NewHandler(service entriesService, repo entriesRepo) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
	}
}

func (handler *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.log")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req LogEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log entry, unmarshal json params: %s", err)
		http.Error(w, "log entry failed", http.StatusBadRequest)
		return
	}

	if req.HabitID <= 0 {
		http.Error(w, "error, habit id empty", http.StatusBadRequest)
		return
	}

	var day time.Time
	if req.Day != "" {
		var err error
		day, err = time.Parse(time.DateOnly, req.Day)
		if err != nil {
			http.Error(w, "invalid day, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	result, err := handler.service.LogEntry(ctx, LogEntryParams{
		HabitID:   req.HabitID,
		Day:       day,
		Value:     req.Value,
		Notes:     req.Notes,
		Completed: completed,
	})

	var validationErr *habits.ValidationError
	switch {
	case err == nil:
	case errors.Is(err, habits.ErrHabitNotFound):
		http.Error(w, "habit not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrHabitArchived):
		http.Error(w, "habit is archived", http.StatusConflict)
		return
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return
	default:
		log.Errorf("failed to log entry for habit %d: %s", req.HabitID, err)
		http.Error(w, "error, failed to log entry", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal log entry result: %s", err)
		http.Error(w, "error, failed to log entry", http.StatusInternalServerError)
		return
	}

	log.Debugf("entry logged for habit %d on %s", req.HabitID, result.Entry.Day.Format(time.DateOnly))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, entry id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, entry id NaN", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.Get(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, ErrEntryNotFound):
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	default:
		log.Errorf("get entry %d: %s", id, err)
		http.Error(w, "failed to get entry", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal entry response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.entries.list")
	defer span.End()

	vars := mux.Vars(r)
	habitIDStr := vars["id"]
	if habitIDStr == "" {
		http.Error(w, "error, habit id empty", http.StatusBadRequest)
		return
	}
	habitID, err := strconv.Atoi(habitIDStr)
	if err != nil {
		http.Error(w, "error, habit id NaN", http.StatusBadRequest)
		return
	}

	params := ListParams{HabitID: habitID}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			http.Error(w, "invalid from, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			http.Error(w, "invalid to, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		params.To = &to
	}

	entries, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list entries for habit %d: %s", habitID, err)
		http.Error(w, "failed to get entries", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListEntriesResponse{Entries: entries})
	if err != nil {
		log.Errorf("marshal entries response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
