package habits

import (
	"fmt"
	"time"
)

type HabitType string

const (
	TypeRunning      HabitType = "running"
	TypeGym          HabitType = "gym"
	TypeCalisthenics HabitType = "calisthenics"
	TypeStudy        HabitType = "study"
	TypeGaming       HabitType = "gaming"
	TypeCustom       HabitType = "custom"
)

func (t HabitType) IsValid() bool {
	switch t {
	case TypeRunning, TypeGym, TypeCalisthenics, TypeStudy, TypeGaming, TypeCustom:
		return true
	}
	return false
}

type MetricKind string

const (
	KindBoolean  MetricKind = "boolean"
	KindCounter  MetricKind = "counter"
	KindTimer    MetricKind = "timer"
	KindNumeric  MetricKind = "numeric"
	KindDistance MetricKind = "distance"
	// KindExercises is the structured workout payload of gym and
	// calisthenics habits: a list of exercises, each with a name and
	// its sets of reps and weight.
	KindExercises MetricKind = "exercises"
)

func (k MetricKind) IsValid() bool {
	switch k {
	case KindBoolean, KindCounter, KindTimer, KindNumeric, KindDistance, KindExercises:
		return true
	}
	return false
}

// Metric describes a single value a habit tracks per entry,
// e.g. "distance" in kilometers for a running habit.
type Metric struct {
	Name     string     `json:"name"`
	Kind     MetricKind `json:"kind"`
	Unit     string     `json:"unit,omitempty"`
	Required bool       `json:"required,omitempty"`
}

type Theme struct {
	Color  string `json:"color,omitempty"`
	Accent string `json:"accent,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

type Target struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

type Recurrence struct {
	Frequency string   `json:"frequency,omitempty"`
	Days      []string `json:"days,omitempty"`
	Target    *Target  `json:"target,omitempty"`
}

type Habit struct {
	ID          int        `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        HabitType  `json:"type"`
	Theme       Theme      `json:"theme"`
	Recurrence  Recurrence `json:"recurrence"`
	Metrics     []Metric   `json:"metrics"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ValidationError is returned when an entry value bag does not match
// the habit metric definitions.
type ValidationError struct {
	Metric string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("metric %q: %s", e.Metric, e.Reason)
}

// ValidateEntryValue checks an entry value bag against the habit metrics.
// Unknown keys are rejected, required metrics must be present,
// and each present value must match its metric kind.
func (h *Habit) ValidateEntryValue(value map[string]any) error {
	metricsByName := make(map[string]Metric, len(h.Metrics))
	for _, m := range h.Metrics {
		metricsByName[m.Name] = m
	}

	for name := range value {
		if _, ok := metricsByName[name]; !ok {
			return &ValidationError{Metric: name, Reason: "not defined for this habit"}
		}
	}

	for _, m := range h.Metrics {
		v, present := value[m.Name]
		if !present {
			if m.Required {
				return &ValidationError{Metric: m.Name, Reason: "required but missing"}
			}
			continue
		}
		if err := validateMetricValue(m, v); err != nil {
			return err
		}
	}

	return nil
}

func validateMetricValue(m Metric, v any) error {
	switch m.Kind {
	case KindBoolean:
		if _, ok := v.(bool); !ok {
			return &ValidationError{Metric: m.Name, Reason: "expected a boolean"}
		}
	case KindCounter:
		f, ok := toFloat(v)
		if !ok {
			return &ValidationError{Metric: m.Name, Reason: "expected a number"}
		}
		if f != float64(int64(f)) {
			return &ValidationError{Metric: m.Name, Reason: "expected a whole number"}
		}
		if f < 0 {
			return &ValidationError{Metric: m.Name, Reason: "must not be negative"}
		}
	case KindTimer, KindNumeric, KindDistance:
		f, ok := toFloat(v)
		if !ok {
			return &ValidationError{Metric: m.Name, Reason: "expected a number"}
		}
		if f < 0 {
			return &ValidationError{Metric: m.Name, Reason: "must not be negative"}
		}
	case KindExercises:
		return validateExercisesValue(m, v)
	default:
		return &ValidationError{Metric: m.Name, Reason: fmt.Sprintf("unknown metric kind %q", m.Kind)}
	}
	return nil
}

// validateExercisesValue checks the structured workout payload:
//
//	[{"name": "bench press", "sets": [{"reps": 10, "weight": 60}]}]
//
// Sets are optional per exercise, reps and weight optional per set,
// but whatever is present has to have this shape so that the workout
// analysis can consume it later.
func validateExercisesValue(m Metric, v any) error {
	exercisesList, ok := v.([]any)
	if !ok {
		return &ValidationError{Metric: m.Name, Reason: "expected a list of exercises"}
	}

	for i, rawExercise := range exercisesList {
		exerciseMap, ok := rawExercise.(map[string]any)
		if !ok {
			return &ValidationError{Metric: m.Name, Reason: fmt.Sprintf("exercise %d is not an object", i)}
		}
		if name, _ := exerciseMap["name"].(string); name == "" {
			return &ValidationError{Metric: m.Name, Reason: fmt.Sprintf("exercise %d has no name", i)}
		}

		rawSets, present := exerciseMap["sets"]
		if !present {
			continue
		}
		setsList, ok := rawSets.([]any)
		if !ok {
			return &ValidationError{Metric: m.Name, Reason: fmt.Sprintf("sets of exercise %d is not a list", i)}
		}
		for j, rawSet := range setsList {
			setMap, ok := rawSet.(map[string]any)
			if !ok {
				return &ValidationError{Metric: m.Name, Reason: fmt.Sprintf("set %d of exercise %d is not an object", j, i)}
			}
			for _, field := range []string{"reps", "weight"} {
				fieldValue, present := setMap[field]
				if !present {
					continue
				}
				f, ok := toFloat(fieldValue)
				if !ok {
					return &ValidationError{Metric: m.Name, Reason: fmt.Sprintf("%s of set %d of exercise %d is not a number", field, j, i)}
				}
				if f < 0 {
					return &ValidationError{Metric: m.Name, Reason: fmt.Sprintf("%s of set %d of exercise %d is negative", field, j, i)}
				}
			}
		}
	}

	return nil
}

// toFloat accepts the numeric types that appear after json.Unmarshal
// into map[string]any, plus plain Go ints used in tests and the seeder.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
