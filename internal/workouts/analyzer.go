package workouts

import (
	"context"
	"errors"
	"iter"
	"sort"
	"time"

	"github.com/bdevic/habitstats/internal/entries"
	"github.com/bdevic/habitstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=workouts_test

type workoutEntriesRepo interface {
	List(ctx context.Context, params entries.ListParams) ([]entries.Entry, error)
}

// SeriesPoint is the best set of an exercise on one day, best meaning
// highest volume.
type SeriesPoint struct {
	Day    time.Time `json:"day"`
	Reps   int       `json:"reps"`
	Weight float64   `json:"weight"`
	Volume float64   `json:"volume"`
}

// Series is the day by day progression of one exercise, ascending.
type Series struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// Ascending iterates the series points from oldest to newest, lazily.
func (s Series) Ascending() iter.Seq[SeriesPoint] {
	return func(yield func(SeriesPoint) bool) {
		for _, p := range s.Points {
			if !yield(p) {
				return
			}
		}
	}
}

// PR marks an exercise whose newest series point is a personal record:
// the first point ever, or heavier than the point right before it.
// Older points are never PR candidates, a deload ends the record run.
type PR struct {
	Exercise string    `json:"exercise"`
	Day      time.Time `json:"day"`
	Weight   float64   `json:"weight"`
}

type WorkoutSummary struct {
	Day    time.Time `json:"day"`
	Volume float64   `json:"volume"`
}

type Analysis struct {
	TotalWorkouts int             `json:"totalWorkouts"`
	TotalVolume   float64         `json:"totalVolume"`
	AvgVolume     float64         `json:"avgVolume"`
	BestWorkout   *WorkoutSummary `json:"bestWorkout,omitempty"`
	Exercises     []Series        `json:"exercises"`
	RecentPRs     []PR            `json:"recentPRs"`
}

type Analyzer struct {
	repo workoutEntriesRepo
}

func NewAnalyzer(repo workoutEntriesRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// Analyze aggregates all workouts of a habit. Entries without a
// parseable workout payload are skipped.
func (a *Analyzer) Analyze(ctx context.Context, habitID int) (_ *Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", habitID))

	habitEntries, err := a.repo.List(ctx, entries.ListParams{HabitID: habitID})
	if err != nil {
		return nil, err
	}

	var workouts []Workout
	for _, entry := range habitEntries {
		if !entry.Completed {
			continue
		}
		w, err := FromEntry(entry)
		if errors.Is(err, ErrNotAWorkout) {
			continue
		}
		if err != nil {
			log.Warnf("skipping workout entry %d: %s", entry.ID, err)
			continue
		}
		workouts = append(workouts, *w)
	}

	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Day.Before(workouts[j].Day)
	})

	analysis := &Analysis{
		TotalWorkouts: len(workouts),
		Exercises:     make([]Series, 0),
		RecentPRs:     make([]PR, 0),
	}
	if len(workouts) == 0 {
		return analysis, nil
	}

	for _, w := range workouts {
		volume := w.Volume()
		analysis.TotalVolume += volume
		// strict comparison, the earliest of equally heavy workouts stays the best
		if analysis.BestWorkout == nil || volume > analysis.BestWorkout.Volume {
			analysis.BestWorkout = &WorkoutSummary{Day: w.Day, Volume: volume}
		}
	}
	analysis.AvgVolume = analysis.TotalVolume / float64(len(workouts))

	analysis.Exercises = buildSeries(workouts)
	analysis.RecentPRs = recentPRs(analysis.Exercises)

	span.SetAttributes(attribute.Int("total_workouts", analysis.TotalWorkouts))
	return analysis, nil
}

// buildSeries picks, per exercise and day, the set with the highest
// volume. Workouts must already be sorted ascending by day.
func buildSeries(workouts []Workout) []Series {
	type exerciseDay struct {
		name string
		day  time.Time
	}

	bestSets := make(map[exerciseDay]Set)
	var order []string
	seen := make(map[string]struct{})

	for _, w := range workouts {
		for _, e := range w.Exercises {
			if _, ok := seen[e.Name]; !ok {
				seen[e.Name] = struct{}{}
				order = append(order, e.Name)
			}
			key := exerciseDay{name: e.Name, day: w.Day}
			for _, s := range e.Sets {
				if best, ok := bestSets[key]; !ok || s.Volume() > best.Volume() {
					bestSets[key] = s
				}
			}
		}
	}

	series := make([]Series, 0, len(order))
	for _, name := range order {
		s := Series{Name: name}
		for _, w := range workouts {
			if best, ok := bestSets[exerciseDay{name: name, day: w.Day}]; ok {
				point := SeriesPoint{
					Day:    w.Day,
					Reps:   best.Reps,
					Weight: best.Weight,
					Volume: best.Volume(),
				}
				if len(s.Points) > 0 && s.Points[len(s.Points)-1].Day.Equal(w.Day) {
					continue
				}
				s.Points = append(s.Points, point)
			}
		}
		series = append(series, s)
	}
	return series
}

func recentPRs(series []Series) []PR {
	prs := make([]PR, 0, len(series))
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		recent := s.Points[len(s.Points)-1]
		if len(s.Points) > 1 && recent.Weight <= s.Points[len(s.Points)-2].Weight {
			continue
		}
		prs = append(prs, PR{Exercise: s.Name, Day: recent.Day, Weight: recent.Weight})
	}
	return prs
}
