// Command seed creates the habitstats schema and fills the database
// with demo data: a handful of habits for the demo user, two weeks of
// entries and the stock achievement definitions. Meant for local
// development, running it twice is safe.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/bdevic/habitstats/internal/achievements"
	"github.com/bdevic/habitstats/internal/config"
	"github.com/bdevic/habitstats/internal/db"
	"github.com/bdevic/habitstats/internal/entries"
	"github.com/bdevic/habitstats/internal/habits"
	"github.com/bdevic/habitstats/internal/streaks"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	days := flag.Int("days", 14, "number of days of demo entries to generate")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.ApplySchema(ctx, dbPool); err != nil {
		log.Fatalf("apply schema: %s", err)
	}
	log.Infoln("schema applied")

	achievementsRepo := achievements.NewRepo(dbPool)
	for _, a := range achievements.Stock() {
		added, err := achievementsRepo.Add(ctx, a)
		if err != nil {
			log.Fatalf("add achievement %q: %s", a.Title, err)
		}
		log.Infof("achievement [%d] %s %s", added.ID, added.Icon, added.Title)
	}

	habitsRepo := habits.NewRepo(dbPool)
	entriesRepo := entries.NewRepo(dbPool)
	streaksRepo := streaks.NewRepo(dbPool)

	for _, seedHabit := range demoHabits(cfg.DemoUserID) {
		added, err := habitsRepo.Add(ctx, seedHabit)
		if err != nil {
			log.Fatalf("add habit %q: %s", seedHabit.Title, err)
		}
		log.Infof("habit [%d] %s", added.ID, added.Title)

		if err := seedEntries(ctx, entriesRepo, streaksRepo, added, *days); err != nil {
			log.Fatalf("seed entries for habit %q: %s", added.Title, err)
		}
	}

	log.Infoln("done")
}

func demoHabits(userID string) []habits.Habit {
	return []habits.Habit{
		{
			UserID:      userID,
			Title:       "Morning Run",
			Description: "easy pace, no watch-staring",
			Type:        habits.TypeRunning,
			Theme:       habits.Theme{Color: "#2dd4bf", Icon: "🏃"},
			Recurrence:  habits.Recurrence{Frequency: "daily"},
			Metrics: []habits.Metric{
				{Name: "distance", Kind: habits.KindDistance, Unit: "km", Required: true},
				{Name: "duration", Kind: habits.KindTimer, Unit: "min"},
			},
			IsActive: true,
		},
		{
			UserID:     userID,
			Title:      "Gym",
			Type:       habits.TypeGym,
			Theme:      habits.Theme{Color: "#f97316", Icon: "🏋️"},
			Recurrence: habits.Recurrence{Frequency: "weekly", Days: []string{"mon", "wed", "fri"}},
			Metrics: []habits.Metric{
				{Name: "duration", Kind: habits.KindTimer, Unit: "min"},
				{Name: "exercises", Kind: habits.KindExercises, Required: true},
			},
			IsActive: true,
		},
		{
			UserID:      userID,
			Title:       "Study Go",
			Description: "a chapter or a kata, whichever comes first",
			Type:        habits.TypeStudy,
			Theme:       habits.Theme{Color: "#818cf8", Icon: "📚"},
			Recurrence:  habits.Recurrence{Frequency: "daily"},
			Metrics: []habits.Metric{
				{Name: "done", Kind: habits.KindBoolean, Required: true},
			},
			IsActive: true,
		},
	}
}

// seedEntries generates completed entries over the last `days` days,
// randomly skipping some so that the streaks and the heatmap look
// believable, then recomputes the streak from what was inserted.
func seedEntries(
	ctx context.Context,
	entriesRepo *entries.Repo,
	streaksRepo *streaks.Repo,
	habit *habits.Habit,
	days int,
) error {
	today := streaks.DayOf(time.Now())

	for i := days - 1; i >= 0; i-- {
		// roughly one day in five is skipped
		if gofakeit.Number(1, 5) == 1 {
			continue
		}

		day := today.AddDate(0, 0, -i)
		entry := entries.Entry{
			HabitID:   habit.ID,
			Day:       day,
			Value:     demoValue(habit),
			Notes:     gofakeit.HipsterSentence(4),
			Completed: true,
		}
		if _, err := entriesRepo.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("upsert entry for %s: %w", day.Format(time.DateOnly), err)
		}
	}

	completedDays, err := entriesRepo.CompletedDays(ctx, habit.ID)
	if err != nil {
		return fmt.Errorf("completed days: %w", err)
	}

	streak := streaks.Recompute(habit.ID, completedDays)
	if err := streaksRepo.Reset(ctx, streak); err != nil {
		return fmt.Errorf("reset streak: %w", err)
	}

	log.Infof("  seeded %d days, streak: current %d, best %d", len(completedDays), streak.Current, streak.Best)
	return nil
}

func demoValue(habit *habits.Habit) map[string]any {
	value := make(map[string]any, len(habit.Metrics))
	for _, metric := range habit.Metrics {
		switch metric.Kind {
		case habits.KindBoolean:
			value[metric.Name] = true
		case habits.KindCounter:
			value[metric.Name] = gofakeit.Number(1, 20)
		case habits.KindTimer:
			value[metric.Name] = gofakeit.Number(20, 90)
		case habits.KindDistance:
			value[metric.Name] = gofakeit.Float64Range(3, 12)
		case habits.KindNumeric:
			value[metric.Name] = gofakeit.Number(3, 8)
		case habits.KindExercises:
			value[metric.Name] = demoExercises()
		}
	}
	return value
}

// demoExercises builds a workout payload in the shape the analysis
// endpoint parses: a list of exercises with sets of reps and weight.
func demoExercises() []any {
	exerciseNames := []string{"bench press", "deadlift", "squat", "pull ups", "overhead press"}

	exercises := make([]any, 0, 3)
	for _, name := range exerciseNames[:gofakeit.Number(2, 3)] {
		sets := make([]any, 0, 4)
		for range gofakeit.Number(3, 4) {
			sets = append(sets, map[string]any{
				"reps":   gofakeit.Number(5, 12),
				"weight": float64(gofakeit.Number(8, 24) * 5),
			})
		}
		exercises = append(exercises, map[string]any{
			"name": name,
			"sets": sets,
		})
	}
	return exercises
}
