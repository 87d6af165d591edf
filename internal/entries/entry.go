package entries

import "time"

// Entry is one logged occurrence of a habit on a calendar day. Value
// holds the metric values the habit defines, e.g. {"distance": 5.2}.
// At most one entry exists per habit and day.
type Entry struct {
	ID        int            `json:"id"`
	HabitID   int            `json:"habitId"`
	Day       time.Time      `json:"day"`
	Value     map[string]any `json:"value"`
	Notes     string         `json:"notes,omitempty"`
	Completed bool           `json:"completed"`
	CreatedAt time.Time      `json:"createdAt"`
}
