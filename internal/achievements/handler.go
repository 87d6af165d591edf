package achievements

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bdevic/habitstats/internal/telemetry/tracing"
	"github.com/bdevic/habitstats/pkg"

	log "github.com/sirupsen/logrus"
)

// EarnedAchievement is an achievement definition together with the
// earned state of the user.
type EarnedAchievement struct {
	Achievement
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}

type ListResponse struct {
	Achievements []EarnedAchievement `json:"achievements"`
	TotalPoints  int                 `json:"totalPoints"`
	Level        int                 `json:"level"`
}

type Handler struct {
	repo   achievementsRepo
	userID string
}

func NewHandler(repo achievementsRepo, userID string) *Handler {
	return &Handler{
		repo:   repo,
		userID: userID,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.list")
	defer span.End()

	defs, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list achievements: %s", err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}

	earned, err := handler.repo.ListEarned(ctx, handler.userID)
	if err != nil {
		log.Errorf("list earned achievements: %s", err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}

	earnedAt := make(map[int]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt
	}

	achievements := make([]EarnedAchievement, 0, len(defs))
	for _, def := range defs {
		ea := EarnedAchievement{Achievement: def}
		if at, ok := earnedAt[def.ID]; ok {
			ea.Earned = true
			ea.EarnedAt = &at
		}
		achievements = append(achievements, ea)
	}

	progress := ProgressFor(len(earned))
	resp := ListResponse{
		Achievements: achievements,
		TotalPoints:  progress.TotalPoints,
		Level:        progress.Level,
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal achievements response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
