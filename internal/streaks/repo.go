package streaks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bdevic/habitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the streak for a habit. A habit without any completions
// yet gets a zero streak rather than an error.
func (r *Repo) Get(ctx context.Context, habitID int) (_ *Streak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", habitID))

	s := Streak{HabitID: habitID}
	err = r.db.QueryRow(
		ctx,
		`SELECT current, best, last_completed, updated_at FROM streak WHERE habit_id = $1;`,
		habitID,
	).Scan(&s.Current, &s.Best, &s.LastCompleted, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &Streak{HabitID: habitID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update advances the streak of a habit for a completed entry day. The
// read-advance-write cycle runs in one transaction with the streak row
// locked, so concurrent entry logs for the same habit serialize instead
// of clobbering each other. The returned bool reports whether a running
// streak was broken by this update.
func (r *Repo) Update(ctx context.Context, habitID int, day time.Time) (_ *Streak, streakBroken bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", habitID))
	span.SetAttributes(attribute.String("day", DayOf(day).Format(time.DateOnly)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	prev := Streak{HabitID: habitID}
	err = tx.QueryRow(
		ctx,
		`SELECT current, best, last_completed, updated_at FROM streak WHERE habit_id = $1 FOR UPDATE;`,
		habitID,
	).Scan(&prev.Current, &prev.Best, &prev.LastCompleted, &prev.UpdatedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("select streak: %w", err)
	}

	next := Advance(prev, day)
	streakBroken = prev.Current > 1 && next.Current == 1

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO streak (habit_id, current, best, last_completed, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (habit_id) DO UPDATE
				SET current = $2, best = $3, last_completed = $4, updated_at = $5;`,
		habitID, next.Current, next.Best, next.LastCompleted, next.UpdatedAt,
	); err != nil {
		return nil, false, fmt.Errorf("upsert streak: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit tx: %w", err)
	}

	return &next, streakBroken, nil
}

// Reset overwrites the stored streak with a recomputed one, used after
// out of order backfills where Advance alone cannot repair the state.
func (r *Repo) Reset(ctx context.Context, s Streak) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", s.HabitID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO streak (habit_id, current, best, last_completed, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (habit_id) DO UPDATE
				SET current = $2, best = $3, last_completed = $4, updated_at = $5;`,
		s.HabitID, s.Current, s.Best, s.LastCompleted, s.UpdatedAt,
	)
	return err
}
