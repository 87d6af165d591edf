package habits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bdevic/habitstats/internal/streaks"
	"github.com/bdevic/habitstats/internal/telemetry/tracing"
	"github.com/bdevic/habitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=habits_test

type habitsRepo interface {
	Add(ctx context.Context, habit Habit) (*Habit, error)
	Get(ctx context.Context, id int) (*Habit, error)
	Update(ctx context.Context, habit *Habit) error
	Delete(ctx context.Context, id int) error
	ListAll(ctx context.Context, userID string) ([]Habit, error)
}

type streaksProvider interface {
	Get(ctx context.Context, habitID int) (*streaks.Streak, error)
}

type todayChecker interface {
	HasEntryOnDay(ctx context.Context, habitID int, day time.Time) (bool, error)
}

// HabitOverview is a habit together with its derived state, the way
// the dashboard shows it.
type HabitOverview struct {
	Habit
	Streak        streaks.Streak `json:"streak"`
	TodayProgress float64        `json:"todayProgress"`
}

type ListResponse struct {
	Habits []HabitOverview `json:"habits"`
}

type DeleteHabitResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateHabitResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo         habitsRepo
	streaksRepo  streaksProvider
	todayChecker todayChecker
	userID       string
}

func NewHandler(
	repo habitsRepo,
	streaksRepo streaksProvider,
	todayChecker todayChecker,
	userID string,
) *Handler {
	return &Handler{
		repo:         repo,
		streaksRepo:  streaksRepo,
		todayChecker: todayChecker,
		userID:       userID,
	}
}

func validateHabit(habit *Habit) error {
	if habit.Title == "" {
		return errors.New("title empty")
	}
	if !habit.Type.IsValid() {
		return fmt.Errorf("invalid habit type %q", habit.Type)
	}
	for _, m := range habit.Metrics {
		if m.Name == "" {
			return errors.New("metric name empty")
		}
		if !m.Kind.IsValid() {
			return fmt.Errorf("invalid metric kind %q", m.Kind)
		}
	}
	return nil
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var habit Habit
	if err := json.NewDecoder(r.Body).Decode(&habit); err != nil {
		log.Tracef("new habit, unmarshal json params: %s", err)
		http.Error(w, "add habit failed", http.StatusBadRequest)
		return
	}

	if err := validateHabit(&habit); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	habit.UserID = handler.userID
	habit.IsActive = true

	addedHabit, err := handler.repo.Add(ctx, habit)
	if err != nil {
		log.Errorf("failed to add new habit [%s]: %s", habit.Title, err)
		http.Error(w, "error, failed to add new habit", http.StatusInternalServerError)
		return
	}

	addedHabitJson, err := json.Marshal(addedHabit)
	if err != nil {
		log.Errorf("failed to marshal new habit: %s", err)
		http.Error(w, "error, failed to add new habit", http.StatusInternalServerError)
		return
	}

	log.Debugf("new habit added: %s", addedHabitJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedHabitJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.get")
	defer span.End()

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	habit, err := handler.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrHabitNotFound) {
		log.Errorf("failed to get habit %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrHabitNotFound) {
		http.Error(w, "habit not found", http.StatusNotFound)
		return
	}

	habitJson, err := json.Marshal(habit)
	if err != nil {
		log.Errorf("failed to marshal habit: %s", err)
		http.Error(w, "failed to marshal habit", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, habitJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var habit Habit
	if err := json.NewDecoder(r.Body).Decode(&habit); err != nil {
		log.Errorf("update habit, unmarshal json params: %s", err)
		http.Error(w, "update habit failed", http.StatusBadRequest)
		return
	}

	if err := validateHabit(&habit); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &habit); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update habit %d: %s", habit.ID, err)
		http.Error(w, "error, failed to update habit", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateHabitResponse{
		UpdatedID: habit.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("habit updated: [%s]: %d", habit.Title, habit.ID)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.delete")
	defer span.End()

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete habit %d: %s", id, err)
		http.Error(w, "habit not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteHabitResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.list")
	defer span.End()

	habitsList, err := handler.repo.ListAll(ctx, handler.userID)
	if err != nil {
		log.Errorf("list habits error: %s", err)
		http.Error(w, "failed to get habits", http.StatusInternalServerError)
		return
	}

	today := streaks.DayOf(time.Now())
	overviews := make([]HabitOverview, 0, len(habitsList))
	for _, habit := range habitsList {
		overview := HabitOverview{Habit: habit}

		streak, err := handler.streaksRepo.Get(ctx, habit.ID)
		if err != nil {
			log.Errorf("failed to get streak for habit %d: %s", habit.ID, err)
			http.Error(w, "failed to get habits", http.StatusInternalServerError)
			return
		}
		overview.Streak = *streak

		completedToday, err := handler.todayChecker.HasEntryOnDay(ctx, habit.ID, today)
		if err != nil {
			log.Errorf("failed to check today entry for habit %d: %s", habit.ID, err)
			http.Error(w, "failed to get habits", http.StatusInternalServerError)
			return
		}
		if completedToday {
			overview.TodayProgress = 100
		}

		overviews = append(overviews, overview)
	}

	respJson, err := json.Marshal(ListResponse{Habits: overviews})
	if err != nil {
		log.Errorf("marshal habits error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func habitID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
