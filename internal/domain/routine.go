package domain

import "strings"

// Set is one planned set of an exercise.
type Set struct {
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
}

// Exercise kinds. Cardio sets use Weight for distance or level and Reps for
// minutes.
const (
	KindWeight = "weight"
	KindCardio = "cardio"
)

// ValidKind reports whether kind is a known exercise kind.
func ValidKind(kind string) bool {
	return kind == KindWeight || kind == KindCardio
}

// Exercise is a named, ordered list of planned sets.
type Exercise struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Sets []Set  `json:"sets"`
}

// Clone deep-copies the exercise.
func (e Exercise) Clone() Exercise {
	out := Exercise{Name: e.Name, Kind: e.Kind, Sets: make([]Set, len(e.Sets))}
	copy(out.Sets, e.Sets)
	return out
}

// RoutineDay is the template for one weekday.
type RoutineDay struct {
	Label     string     `json:"label"`
	Exercises []Exercise `json:"exercises"`
}

// Clone deep-copies the day.
func (d RoutineDay) Clone() RoutineDay {
	out := RoutineDay{Label: d.Label, Exercises: make([]Exercise, len(d.Exercises))}
	for i, ex := range d.Exercises {
		out.Exercises[i] = ex.Clone()
	}
	return out
}

// WeeklyRoutine maps weekday keys to their templates.
type WeeklyRoutine map[Weekday]RoutineDay

// DefaultRoutine returns a routine with every day empty.
func DefaultRoutine() WeeklyRoutine {
	r := make(WeeklyRoutine, len(Weekdays))
	for _, d := range Weekdays {
		r[d] = RoutineDay{Label: "Rest", Exercises: []Exercise{}}
	}
	return r
}

// Clone deep-copies the routine.
func (r WeeklyRoutine) Clone() WeeklyRoutine {
	out := make(WeeklyRoutine, len(r))
	for d, day := range r {
		out[d] = day.Clone()
	}
	return out
}

// Normalized fills missing weekdays, drops unknown keys and coerces sets.
func (r WeeklyRoutine) Normalized() WeeklyRoutine {
	out := DefaultRoutine()
	for _, d := range Weekdays {
		day, ok := r[d]
		if !ok {
			continue
		}
		day = day.Clone()
		if day.Exercises == nil {
			day.Exercises = []Exercise{}
		}
		for i := range day.Exercises {
			day.Exercises[i].Name = strings.TrimSpace(day.Exercises[i].Name)
			if !ValidKind(day.Exercises[i].Kind) {
				day.Exercises[i].Kind = KindWeight
			}
			if day.Exercises[i].Sets == nil {
				day.Exercises[i].Sets = []Set{}
			}
			for j, s := range day.Exercises[i].Sets {
				day.Exercises[i].Sets[j] = Set{Weight: NonNegative(s.Weight), Reps: NonNegative(s.Reps)}
			}
		}
		out[d] = day
	}
	return out
}
