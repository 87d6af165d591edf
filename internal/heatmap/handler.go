package heatmap

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/bdevic/habitstats/internal/habits"
	"github.com/bdevic/habitstats/internal/telemetry/tracing"
	"github.com/bdevic/habitstats/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=heatmap_mocks_test.go -package=heatmap_test

type habitsRepo interface {
	ListActive(ctx context.Context, userID string) ([]habits.Habit, error)
}

type entriesRepo interface {
	CompletedCountPerDay(ctx context.Context, userID string, from, to time.Time) (map[time.Time]int, error)
}

type heatmapCache interface {
	Get(ctx context.Context, userID string, windowDays int) (map[string]float64, bool)
	Set(ctx context.Context, userID string, windowDays int, heatmap map[string]float64)
}

type Handler struct {
	habitsRepo  habitsRepo
	entriesRepo entriesRepo
	cache       heatmapCache
	userID      string
}

func NewHandler(
	habitsRepo habitsRepo,
	entriesRepo entriesRepo,
	cache heatmapCache,
	userID string,
) *Handler {
	return &Handler{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
		cache:       cache,
		userID:      userID,
	}
}

// HandleGet renders the completion heatmap. The optional months query
// parameter widens or narrows the window, one month counting as 30
// days. The default window is 90 days.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.heatmap.get")
	defer span.End()

	windowDays := DefaultWindowDays
	if monthsStr := r.URL.Query().Get("months"); monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil || months < 1 || months > 12 {
			http.Error(w, "invalid months parameter", http.StatusBadRequest)
			return
		}
		windowDays = months * 30
	}
	span.SetAttributes(attribute.Int("window_days", windowDays))

	if cached, ok := handler.cache.Get(ctx, handler.userID, windowDays); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		handler.writeHeatmap(w, cached)
		return
	}

	activeHabits, err := handler.habitsRepo.ListActive(ctx, handler.userID)
	if err != nil {
		log.Errorf("heatmap, list active habits: %s", err)
		http.Error(w, "failed to get heatmap", http.StatusInternalServerError)
		return
	}

	end := time.Now()
	start := end.AddDate(0, 0, -(windowDays - 1))
	completedPerDay, err := handler.entriesRepo.CompletedCountPerDay(ctx, handler.userID, start, end)
	if err != nil {
		log.Errorf("heatmap, completed count per day: %s", err)
		http.Error(w, "failed to get heatmap", http.StatusInternalServerError)
		return
	}

	heatmap := make(map[string]float64, windowDays)
	for day, pct := range Build(end, windowDays, len(activeHabits), completedPerDay) {
		heatmap[day.Format(time.DateOnly)] = pct
	}

	handler.cache.Set(ctx, handler.userID, windowDays, heatmap)
	handler.writeHeatmap(w, heatmap)
}

func (handler *Handler) writeHeatmap(w http.ResponseWriter, heatmap map[string]float64) {
	heatmapJson, err := json.Marshal(heatmap)
	if err != nil {
		log.Errorf("marshal heatmap: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, heatmapJson, http.StatusOK)
}
