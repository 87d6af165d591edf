package achievements

import "time"

const (
	// PointsPerAchievement is awarded for every earned achievement.
	PointsPerAchievement = 50
	// PointsPerLevel is the amount of points needed to level up.
	PointsPerLevel = 100
)

// LevelForPoints maps total points to a user level. Level 1 starts at
// zero points, every full hundred points adds a level.
func LevelForPoints(points int) int {
	return points/PointsPerLevel + 1
}

type CriteriaType string

const (
	CriteriaFirstEntry      CriteriaType = "first_entry"
	CriteriaStreak          CriteriaType = "streak"
	CriteriaTotalDays       CriteriaType = "total_days"
	CriteriaEarlyCompletion CriteriaType = "early_completion"
)

// Criteria describes when an achievement is earned. Days applies to
// streak and total_days criteria, Count to early_completion.
type Criteria struct {
	Type  CriteriaType `json:"type"`
	Days  int          `json:"days,omitempty"`
	Count int          `json:"count,omitempty"`
}

type Achievement struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Criteria    Criteria  `json:"criteria"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UserAchievement struct {
	ID            int       `json:"id"`
	UserID        string    `json:"userId"`
	AchievementID int       `json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`
}

// Stock returns the built-in achievement set, seeded into a fresh
// database.
func Stock() []Achievement {
	return []Achievement{
		{
			Title:       "First Step",
			Description: "Log your first habit entry",
			Icon:        "👣",
			Criteria:    Criteria{Type: CriteriaFirstEntry},
		},
		{
			Title:       "Week Warrior",
			Description: "Keep a habit going for 7 days in a row",
			Icon:        "🔥",
			Criteria:    Criteria{Type: CriteriaStreak, Days: 7},
		},
		{
			Title:       "Habit Master",
			Description: "Complete habits on 30 different days",
			Icon:        "🏆",
			Criteria:    Criteria{Type: CriteriaTotalDays, Days: 30},
		},
		{
			Title:       "Early Bird",
			Description: "Log 5 entries before 8 in the morning",
			Icon:        "🌅",
			Criteria:    Criteria{Type: CriteriaEarlyCompletion, Count: 5},
		},
	}
}
