package workouts

import (
	"errors"
	"fmt"
	"time"

	"github.com/bdevic/habitstats/internal/entries"
)

var ErrNotAWorkout = errors.New("entry holds no workout payload")

// Set is a single exercise set. Weight is in kilos, a bodyweight set
// has weight 0.
type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// Volume is the classic training volume of a set, reps times weight.
func (s Set) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

type Exercise struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

func (e Exercise) Volume() float64 {
	var volume float64
	for _, s := range e.Sets {
		volume += s.Volume()
	}
	return volume
}

// Workout is the parsed payload of a gym habit entry.
type Workout struct {
	Day       time.Time  `json:"day"`
	Duration  float64    `json:"duration,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

func (w Workout) Volume() float64 {
	var volume float64
	for _, e := range w.Exercises {
		volume += e.Volume()
	}
	return volume
}

// FromEntry parses the workout payload out of a habit entry value bag.
// The expected shape, as logged by the clients:
//
//	{"duration": 45, "exercises": [{"name": "bench press", "sets": [{"reps": 10, "weight": 60}]}]}
func FromEntry(entry entries.Entry) (*Workout, error) {
	rawExercises, ok := entry.Value["exercises"]
	if !ok {
		return nil, ErrNotAWorkout
	}
	exercisesList, ok := rawExercises.([]any)
	if !ok {
		return nil, fmt.Errorf("entry %d: exercises is not a list", entry.ID)
	}

	w := &Workout{
		Day: entry.Day,
	}
	if duration, ok := toFloat(entry.Value["duration"]); ok {
		w.Duration = duration
	}

	for i, rawExercise := range exercisesList {
		exerciseMap, ok := rawExercise.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("entry %d: exercise %d is not an object", entry.ID, i)
		}
		name, _ := exerciseMap["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("entry %d: exercise %d has no name", entry.ID, i)
		}

		exercise := Exercise{Name: name}
		if rawSets, ok := exerciseMap["sets"].([]any); ok {
			for j, rawSet := range rawSets {
				setMap, ok := rawSet.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("entry %d: set %d of %s is not an object", entry.ID, j, name)
				}
				reps, _ := toFloat(setMap["reps"])
				weight, _ := toFloat(setMap["weight"])
				exercise.Sets = append(exercise.Sets, Set{
					Reps:   int(reps),
					Weight: weight,
				})
			}
		}

		w.Exercises = append(w.Exercises, exercise)
	}

	return w, nil
}

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
