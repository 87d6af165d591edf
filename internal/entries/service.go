package entries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bdevic/habitstats/internal/achievements"
	"github.com/bdevic/habitstats/internal/habits"
	"github.com/bdevic/habitstats/internal/streaks"
	"github.com/bdevic/habitstats/internal/telemetry/metrics"
	"github.com/bdevic/habitstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrHabitArchived = errors.New("habit is archived")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=entries_test

type habitsRepo interface {
	Get(ctx context.Context, id int) (*habits.Habit, error)
}

type entriesRepo interface {
	Upsert(ctx context.Context, entry Entry) (*Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
	List(ctx context.Context, params ListParams) ([]Entry, error)
}

type streaksRepo interface {
	Get(ctx context.Context, habitID int) (*streaks.Streak, error)
	Update(ctx context.Context, habitID int, day time.Time) (*streaks.Streak, bool, error)
}

type achievementsEvaluator interface {
	Evaluate(ctx context.Context, userID string) ([]achievements.Achievement, error)
}

type heatmapInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

type LogEntryParams struct {
	HabitID   int
	Day       time.Time
	Value     map[string]any
	Notes     string
	Completed bool
}

type LogEntryResult struct {
	Entry           Entry                      `json:"entry"`
	Streak          streaks.Streak             `json:"streak"`
	NewAchievements []achievements.Achievement `json:"newAchievements"`
}

// Service ties an entry log together: validate against the habit
// metrics, upsert the entry, advance the streak, evaluate achievements
// and drop the stale heatmap cache.
type Service struct {
	habits         habitsRepo
	entries        entriesRepo
	streaks        streaksRepo
	evaluator      achievementsEvaluator
	heatmap        heatmapInvalidator
	metricsManager *metrics.Manager
}

func NewService(
	habits habitsRepo,
	entries entriesRepo,
	streaks streaksRepo,
	evaluator achievementsEvaluator,
	heatmap heatmapInvalidator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		habits:         habits,
		entries:        entries,
		streaks:        streaks,
		evaluator:      evaluator,
		heatmap:        heatmap,
		metricsManager: metricsManager,
	}
}

func (s *Service) LogEntry(ctx context.Context, params LogEntryParams) (_ *LogEntryResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.entries.logEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", params.HabitID))

	habit, err := s.habits.Get(ctx, params.HabitID)
	if err != nil {
		return nil, err
	}
	if !habit.IsActive {
		return nil, ErrHabitArchived
	}

	if err := habit.ValidateEntryValue(params.Value); err != nil {
		return nil, err
	}

	day := params.Day
	if day.IsZero() {
		day = time.Now()
	}
	day = streaks.DayOf(day)
	span.SetAttributes(attribute.String("day", day.Format(time.DateOnly)))

	entry, err := s.entries.Upsert(ctx, Entry{
		HabitID:   params.HabitID,
		Day:       day,
		Value:     params.Value,
		Notes:     params.Notes,
		Completed: params.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert entry: %w", err)
	}
	s.metricsManager.CounterEntriesLogged.Inc()

	var streak *streaks.Streak
	if params.Completed {
		var streakBroken bool
		streak, streakBroken, err = s.streaks.Update(ctx, params.HabitID, day)
		if err != nil {
			return nil, fmt.Errorf("update streak: %w", err)
		}
		if streakBroken {
			s.metricsManager.CounterStreaksBroken.Inc()
		}
	} else {
		streak, err = s.streaks.Get(ctx, params.HabitID)
		if err != nil {
			return nil, fmt.Errorf("get streak: %w", err)
		}
	}

	// the entry and streak are stored at this point, failures of the
	// secondary updates below must not fail the whole operation
	newAchievements, err := s.evaluator.Evaluate(ctx, habit.UserID)
	if err != nil {
		log.Errorf("evaluate achievements for user %s: %s", habit.UserID, err)
		newAchievements = nil
	}
	if len(newAchievements) > 0 {
		s.metricsManager.CounterAchievementsEarned.Add(float64(len(newAchievements)))
	}

	if err := s.heatmap.Invalidate(ctx, habit.UserID); err != nil {
		log.Errorf("invalidate heatmap cache for user %s: %s", habit.UserID, err)
	}

	return &LogEntryResult{
		Entry:           *entry,
		Streak:          *streak,
		NewAchievements: newAchievements,
	}, nil
}
