package streaks

import (
	"sort"
	"time"
)

// Streak tracks consecutive completed days for a habit. Current is the
// length of the run ending at LastCompleted, Best the longest run ever.
type Streak struct {
	HabitID       int        `json:"habitId"`
	Current       int        `json:"current"`
	Best          int        `json:"best"`
	LastCompleted *time.Time `json:"lastCompleted,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// DayOf normalizes a timestamp to its UTC midnight. All streak
// arithmetic operates on these normalized days.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Advance computes the streak state after completing an entry on the
// given day. It is a pure function of the previous state and the entry
// day, never of the wall clock:
//   - same day as the last completion: no change (idempotent)
//   - the day right after the last completion: the run continues
//   - any later day: the run resets to 1
//   - a day before the last completion (backfill): no change, a full
//     Recompute over the entry history is the tool for that case
//
// Best never decreases.
func Advance(prev Streak, day time.Time) Streak {
	day = DayOf(day)

	next := prev
	next.UpdatedAt = time.Now()

	if prev.LastCompleted == nil {
		next.Current = 1
	} else {
		last := DayOf(*prev.LastCompleted)
		switch {
		case day.Equal(last):
			return next
		case day.Before(last):
			return next
		case day.Equal(last.AddDate(0, 0, 1)):
			next.Current = prev.Current + 1
		default:
			next.Current = 1
		}
	}

	next.LastCompleted = &day
	if next.Current > next.Best {
		next.Best = next.Current
	}
	return next
}

// Recompute derives the streak state from the complete entry history.
// Days may be unsorted and contain duplicates.
func Recompute(habitID int, days []time.Time) Streak {
	s := Streak{
		HabitID:   habitID,
		UpdatedAt: time.Now(),
	}
	if len(days) == 0 {
		return s
	}

	seen := make(map[time.Time]struct{}, len(days))
	normalized := make([]time.Time, 0, len(days))
	for _, d := range days {
		day := DayOf(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		normalized = append(normalized, day)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Before(normalized[j])
	})

	run := 1
	best := 1
	for i := 1; i < len(normalized); i++ {
		if normalized[i].Equal(normalized[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	last := normalized[len(normalized)-1]
	s.Current = run
	s.Best = best
	s.LastCompleted = &last
	return s
}
