package achievements

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bdevic/habitstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	definitionsCacheSize = 512 * 1024
	definitionsCacheTTL  = 10 * time.Minute
)

var definitionsCacheKey = []byte("achievement-definitions")

//go:generate mockgen -source=$GOFILE -destination=evaluator_mocks_test.go -package=achievements_test

type achievementsRepo interface {
	List(ctx context.Context) ([]Achievement, error)
	ListEarned(ctx context.Context, userID string) ([]UserAchievement, error)
	Award(ctx context.Context, userID string, achievementID int) (bool, error)
	Stats(ctx context.Context, userID string) (*UserStats, error)
}

// Evaluator checks achievement criteria against user stats and awards
// the ones newly satisfied. Achievement definitions rarely change, so
// they are held in an in-memory cache.
type Evaluator struct {
	repo  achievementsRepo
	cache *freecache.Cache
}

func NewEvaluator(repo achievementsRepo) *Evaluator {
	return &Evaluator{
		repo:  repo,
		cache: freecache.NewCache(definitionsCacheSize),
	}
}

func (e *Evaluator) definitions(ctx context.Context) ([]Achievement, error) {
	if cached, err := e.cache.Get(definitionsCacheKey); err == nil {
		var defs []Achievement
		if err := json.Unmarshal(cached, &defs); err == nil {
			return defs, nil
		}
		log.Warnf("failed to unmarshal cached achievement definitions, falling through")
	}

	defs, err := e.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	defsJson, err := json.Marshal(defs)
	if err != nil {
		return nil, fmt.Errorf("marshal achievements: %w", err)
	}
	if err := e.cache.Set(definitionsCacheKey, defsJson, int(definitionsCacheTTL.Seconds())); err != nil {
		// cache failure must not break evaluation
		log.Warnf("failed to cache achievement definitions: %s", err)
	}

	return defs, nil
}

// Evaluate awards every achievement whose criteria the user now
// satisfies and returns the newly earned ones. Already earned
// achievements are never awarded twice.
func (e *Evaluator) Evaluate(ctx context.Context, userID string) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "evaluator.achievements.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	defs, err := e.definitions(ctx)
	if err != nil {
		return nil, err
	}

	earned, err := e.repo.ListEarned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list earned achievements: %w", err)
	}
	earnedIDs := make(map[int]struct{}, len(earned))
	for _, ua := range earned {
		earnedIDs[ua.AchievementID] = struct{}{}
	}

	stats, err := e.repo.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	var newlyEarned []Achievement
	for _, def := range defs {
		if _, alreadyEarned := earnedIDs[def.ID]; alreadyEarned {
			continue
		}
		if !criteriaSatisfied(def.Criteria, stats) {
			continue
		}

		awarded, err := e.repo.Award(ctx, userID, def.ID)
		if err != nil {
			return nil, fmt.Errorf("award achievement %d: %w", def.ID, err)
		}
		if awarded {
			log.Debugf("user %s earned achievement [%s]", userID, def.Title)
			newlyEarned = append(newlyEarned, def)
		}
	}

	span.SetAttributes(attribute.Int("newly_earned", len(newlyEarned)))
	return newlyEarned, nil
}

func criteriaSatisfied(c Criteria, stats *UserStats) bool {
	switch c.Type {
	case CriteriaFirstEntry:
		return stats.EntriesCount >= 1
	case CriteriaStreak:
		return stats.MaxStreak >= c.Days
	case CriteriaTotalDays:
		return stats.DistinctEntryDays >= c.Days
	case CriteriaEarlyCompletion:
		return stats.EarlyEntriesCount >= c.Count
	default:
		log.Warnf("unknown achievement criteria type: %s", c.Type)
		return false
	}
}

// Progress summarizes the gamification state of a user.
type Progress struct {
	EarnedCount int `json:"earnedCount"`
	TotalPoints int `json:"totalPoints"`
	Level       int `json:"level"`
}

// ProgressFor derives points and level from the number of earned
// achievements. Both the achievements listing and any future profile
// surface go through here so the arithmetic lives in one place.
func ProgressFor(earnedCount int) Progress {
	points := earnedCount * PointsPerAchievement
	return Progress{
		EarnedCount: earnedCount,
		TotalPoints: points,
		Level:       LevelForPoints(points),
	}
}
