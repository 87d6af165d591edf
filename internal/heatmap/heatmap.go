package heatmap

import (
	"iter"
	"time"

	"github.com/bdevic/habitstats/internal/streaks"
)

// DefaultWindowDays is the heatmap window used when the client does not
// ask for a specific one, roughly three months.
const DefaultWindowDays = 90

// Build returns the completion percentage per day for a window of
// windowDays days ending at (and including) the given day. Each yielded
// pair is a UTC midnight day and the percentage of the user's habits
// completed on it, in [0, 100]. Days without completions yield 0, as
// does every day when the user has no habits at all.
//
// The sequence is lazy and restartable: nothing is computed before
// iteration starts and ranging over it a second time replays it from
// the beginning.
func Build(
	endDay time.Time,
	windowDays int,
	totalHabits int,
	completedPerDay map[time.Time]int,
) iter.Seq2[time.Time, float64] {
	end := streaks.DayOf(endDay)
	start := end.AddDate(0, 0, -(windowDays - 1))

	return func(yield func(time.Time, float64) bool) {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			var pct float64
			if totalHabits > 0 {
				completed := completedPerDay[day]
				if completed > totalHabits {
					completed = totalHabits
				}
				pct = float64(completed) / float64(totalHabits) * 100
			}
			if !yield(day, pct) {
				return
			}
		}
	}
}
