package habits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bdevic/habitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrHabitNotFound = errors.New("habit not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, habit Habit) (_ *Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	themeJson, err := json.Marshal(habit.Theme)
	if err != nil {
		return nil, fmt.Errorf("marshal theme: %w", err)
	}
	recurrenceJson, err := json.Marshal(habit.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("marshal recurrence: %w", err)
	}
	metricsJson, err := json.Marshal(habit.Metrics)
	if err != nil {
		return nil, fmt.Errorf("marshal metrics: %w", err)
	}

	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}
	habit.UpdatedAt = habit.CreatedAt

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO habit
				(user_id, title, description, type, theme, recurrence, metrics, is_active, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		habit.UserID, habit.Title, habit.Description, habit.Type,
		themeJson, recurrenceJson, metricsJson,
		habit.IsActive, habit.CreatedAt, habit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("habit.id", id))

	habit.ID = id
	return &habit, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, title, description, type, theme, recurrence, metrics, is_active, created_at, updated_at
			FROM habit WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	habits, err := r.rows2habits(rows)
	if err != nil {
		return nil, err
	}

	if len(habits) != 1 {
		return nil, ErrHabitNotFound
	}

	return &habits[0], nil
}

func (r *Repo) Update(ctx context.Context, habit *Habit) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", habit.ID))

	themeJson, err := json.Marshal(habit.Theme)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}
	recurrenceJson, err := json.Marshal(habit.Recurrence)
	if err != nil {
		return fmt.Errorf("marshal recurrence: %w", err)
	}
	metricsJson, err := json.Marshal(habit.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE habit SET
				title = $1, description = $2, type = $3, theme = $4,
				recurrence = $5, metrics = $6, is_active = $7, updated_at = NOW()
			WHERE id = $8;`,
		habit.Title, habit.Description, habit.Type,
		themeJson, recurrenceJson, metricsJson,
		habit.IsActive, habit.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrHabitNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM habit WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// ListAll returns all habits of a user, active and archived alike,
// newest first.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, title, description, type, theme, recurrence, metrics, is_active, created_at, updated_at
			FROM habit
			WHERE user_id = $1
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2habits(rows)
}

// ListActive returns only the active (non-archived) habits of a user.
func (r *Repo) ListActive(ctx context.Context, userID string) (_ []Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.listActive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, title, description, type, theme, recurrence, metrics, is_active, created_at, updated_at
			FROM habit
			WHERE user_id = $1 AND is_active IS TRUE
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2habits(rows)
}

func (r *Repo) rows2habits(rows pgx.Rows) ([]Habit, error) {
	var habits []Habit
	for rows.Next() {
		var h Habit
		var themeBytes, recurrenceBytes, metricsBytes []byte
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.Title, &h.Description, &h.Type,
			&themeBytes, &recurrenceBytes, &metricsBytes,
			&h.IsActive, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if len(themeBytes) > 0 {
			if err := json.Unmarshal(themeBytes, &h.Theme); err != nil {
				return nil, fmt.Errorf("unmarshal theme for habit %d: %w", h.ID, err)
			}
		}
		if len(recurrenceBytes) > 0 {
			if err := json.Unmarshal(recurrenceBytes, &h.Recurrence); err != nil {
				return nil, fmt.Errorf("unmarshal recurrence for habit %d: %w", h.ID, err)
			}
		}
		if len(metricsBytes) > 0 {
			if err := json.Unmarshal(metricsBytes, &h.Metrics); err != nil {
				return nil, fmt.Errorf("unmarshal metrics for habit %d: %w", h.ID, err)
			}
		}

		habits = append(habits, h)
	}

	if habits == nil {
		habits = make([]Habit, 0)
	}

	return habits, nil
}
