package entries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bdevic/habitstats/internal/streaks"
	"github.com/bdevic/habitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("entry not found")

type ListParams struct {
	HabitID int
	From    *time.Time
	To      *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert inserts the entry, or overwrites the existing one when the
// habit already has an entry for that day. Logging twice on the same
// day is an update, never a duplicate.
func (r *Repo) Upsert(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", entry.HabitID))

	valueJson, err := json.Marshal(entry.Value)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}

	entry.Day = streaks.DayOf(entry.Day)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO habit_entry (habit_id, day, value, notes, completed, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (habit_id, day) DO UPDATE
				SET value = $3, notes = $4, completed = $5
			RETURNING id, created_at;`,
		entry.HabitID, entry.Day, valueJson, entry.Notes, entry.Completed, entry.CreatedAt,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert entry: %w", err)
	}

	span.SetAttributes(attribute.Int("entry.id", entry.ID))
	return &entry, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, habit_id, day, value, notes, completed, created_at
			FROM habit_entry WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, ErrEntryNotFound
	}
	return &entries[0], nil
}

// List returns the entries of a habit, newest first, optionally
// narrowed to a day window.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", params.HabitID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, habit_id, day, value, notes, completed, created_at
			FROM habit_entry
			WHERE habit_id = $1
				AND ($2::date IS NULL OR day >= $2)
				AND ($3::date IS NULL OR day <= $3)
			ORDER BY day DESC;`,
		params.HabitID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2entries(rows)
}

// CompletedDays returns every day a habit was completed on, used to
// recompute streaks from scratch.
func (r *Repo) CompletedDays(ctx context.Context, habitID int) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.completedDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", habitID))

	rows, err := r.db.Query(
		ctx,
		`SELECT day FROM habit_entry WHERE habit_id = $1 AND completed IS TRUE ORDER BY day;`,
		habitID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// HasEntryOnDay reports whether a habit has a completed entry on the
// given day.
func (r *Repo) HasEntryOnDay(ctx context.Context, habitID int, day time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.hasEntryOnDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("habit.id", habitID))

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM habit_entry WHERE habit_id = $1 AND day = $2 AND completed IS TRUE
		);`,
		habitID, streaks.DayOf(day),
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CompletedCountPerDay returns, for each day in the window, the number
// of distinct habits of the user completed on that day. Days with no
// completions are absent from the map.
func (r *Repo) CompletedCountPerDay(
	ctx context.Context,
	userID string,
	from, to time.Time,
) (_ map[time.Time]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.entries.completedCountPerDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT e.day, COUNT(DISTINCT e.habit_id)
			FROM habit_entry e
			JOIN habit h ON e.habit_id = h.id
			WHERE h.user_id = $1
				AND e.completed IS TRUE
				AND e.day >= $2 AND e.day <= $3
			GROUP BY e.day;`,
		userID, streaks.DayOf(from), streaks.DayOf(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int)
	for rows.Next() {
		var d time.Time
		var count int
		if err := rows.Scan(&d, &count); err != nil {
			return nil, err
		}
		counts[streaks.DayOf(d)] = count
	}
	return counts, nil
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var valueBytes []byte
		if err := rows.Scan(&e.ID, &e.HabitID, &e.Day, &valueBytes, &e.Notes, &e.Completed, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.Day = streaks.DayOf(e.Day)
		if len(valueBytes) > 0 {
			if err := json.Unmarshal(valueBytes, &e.Value); err != nil {
				return nil, fmt.Errorf("unmarshal value for entry %d: %w", e.ID, err)
			}
		}
		if e.Value == nil {
			e.Value = make(map[string]any)
		}

		entries = append(entries, e)
	}

	if entries == nil {
		entries = make([]Entry, 0)
	}

	return entries, nil
}
