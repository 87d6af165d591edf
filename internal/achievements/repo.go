package achievements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bdevic/habitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrAchievementNotFound = errors.New("achievement not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, a Achievement) (_ *Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	criteriaJson, err := json.Marshal(a.Criteria)
	if err != nil {
		return nil, fmt.Errorf("marshal criteria: %w", err)
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO achievement (title, description, icon, criteria, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (title) DO UPDATE
				SET description = $2, icon = $3, criteria = $4
			RETURNING id;`,
		a.Title, a.Description, a.Icon, criteriaJson, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("achievement.id", a.ID))
	return &a, nil
}

func (r *Repo) List(ctx context.Context) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, description, icon, criteria, created_at FROM achievement ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var achievements []Achievement
	for rows.Next() {
		var a Achievement
		var criteriaBytes []byte
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Icon, &criteriaBytes, &a.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(criteriaBytes, &a.Criteria); err != nil {
			return nil, fmt.Errorf("unmarshal criteria for achievement %d: %w", a.ID, err)
		}
		achievements = append(achievements, a)
	}

	if achievements == nil {
		achievements = make([]Achievement, 0)
	}
	return achievements, nil
}

func (r *Repo) ListEarned(ctx context.Context, userID string) (_ []UserAchievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.listEarned")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, achievement_id, earned_at
			FROM user_achievement WHERE user_id = $1 ORDER BY earned_at;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var earned []UserAchievement
	for rows.Next() {
		var ua UserAchievement
		if err := rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.EarnedAt); err != nil {
			return nil, err
		}
		earned = append(earned, ua)
	}

	if earned == nil {
		earned = make([]UserAchievement, 0)
	}
	return earned, nil
}

// Award marks an achievement as earned by the user. Awarding an
// already earned achievement is a no-op, reported through the returned
// bool.
func (r *Repo) Award(ctx context.Context, userID string, achievementID int) (awarded bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.award")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Int("achievement.id", achievementID))

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO user_achievement (user_id, achievement_id, earned_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (user_id, achievement_id) DO NOTHING;`,
		userID, achievementID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UserStats holds the aggregates the achievement criteria are checked
// against.
type UserStats struct {
	EntriesCount      int
	DistinctEntryDays int
	EarlyEntriesCount int
	MaxStreak         int
}

func (r *Repo) Stats(ctx context.Context, userID string) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	var stats UserStats
	err = r.db.QueryRow(
		ctx,
		`SELECT
			COUNT(e.id),
			COUNT(DISTINCT e.day),
			COUNT(e.id) FILTER (WHERE EXTRACT(HOUR FROM e.created_at) < 8),
			COALESCE(MAX(s.best), 0)
		FROM habit h
		LEFT JOIN habit_entry e ON e.habit_id = h.id AND e.completed IS TRUE
		LEFT JOIN streak s ON s.habit_id = h.id
		WHERE h.user_id = $1;`,
		userID,
	).Scan(&stats.EntriesCount, &stats.DistinctEntryDays, &stats.EarlyEntriesCount, &stats.MaxStreak)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
