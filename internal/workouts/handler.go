package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bdevic/habitstats/internal/habits"
	"github.com/bdevic/habitstats/internal/telemetry/tracing"
	"github.com/bdevic/habitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type habitsGetter interface {
	Get(ctx context.Context, id int) (*habits.Habit, error)
}

type Handler struct {
	habitsRepo habitsGetter
	analyzer   *Analyzer
}

func NewHandler(habitsRepo habitsGetter, repo workoutEntriesRepo) *Handler {
	return &Handler{
		habitsRepo: habitsRepo,
		analyzer:   NewAnalyzer(repo),
	}
}

// HandleAnalysis serves the aggregated workout analysis of a gym or
// calisthenics habit.
func (handler *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.analysis")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	habit, err := handler.habitsRepo.Get(ctx, id)
	if err != nil && !errors.Is(err, habits.ErrHabitNotFound) {
		log.Errorf("failed to get habit %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, habits.ErrHabitNotFound) {
		http.Error(w, "habit not found", http.StatusNotFound)
		return
	}

	if habit.Type != habits.TypeGym && habit.Type != habits.TypeCalisthenics {
		http.Error(w, "habit has no workout analysis", http.StatusBadRequest)
		return
	}

	analysis, err := handler.analyzer.Analyze(ctx, id)
	if err != nil {
		log.Errorf("failed to analyze workouts for habit %d: %s", id, err)
		http.Error(w, "failed to analyze workouts", http.StatusInternalServerError)
		return
	}

	analysisJson, err := json.Marshal(analysis)
	if err != nil {
		log.Errorf("failed to marshal workout analysis: %s", err)
		http.Error(w, "failed to marshal workout analysis", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, analysisJson, http.StatusOK)
}
