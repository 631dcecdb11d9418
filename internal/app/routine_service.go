package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitdiary/internal/domain"
)

// SetUpdate carries the set fields to change; nil fields are kept.
type SetUpdate struct {
	Weight *float64
	Reps   *float64
}

// ExerciseUpdate carries the exercise fields to change; nil fields are kept.
type ExerciseUpdate struct {
	Name *string
	Kind *string
}

// RoutineService edits the weekly template. Existing training logs are
// never touched.
type RoutineService struct {
	routine *Record[domain.WeeklyRoutine]
}

// NewRoutineService creates a RoutineService.
func NewRoutineService(routine *Record[domain.WeeklyRoutine]) *RoutineService {
	return &RoutineService{routine: routine}
}

// Get returns the whole routine.
func (s *RoutineService) Get() domain.WeeklyRoutine {
	return s.routine.Get()
}

// Day returns the template for day.
func (s *RoutineService) Day(day string) (domain.RoutineDay, error) {
	d, err := parseDay(day)
	if err != nil {
		return domain.RoutineDay{}, err
	}
	return s.routine.Get()[d], nil
}

// SetLabel renames the day.
func (s *RoutineService) SetLabel(ctx context.Context, day, label string) (domain.RoutineDay, error) {
	return s.editDay(ctx, day, func(rd *domain.RoutineDay) error {
		rd.Label = strings.TrimSpace(label)
		return nil
	})
}

// AddExercise appends an exercise with one empty set. A blank kind means
// a weight exercise.
func (s *RoutineService) AddExercise(ctx context.Context, day, name, kind string) (domain.RoutineDay, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.RoutineDay{}, errors.New("exercise name must not be empty")
	}
	kind, err := parseKind(kind)
	if err != nil {
		return domain.RoutineDay{}, err
	}
	return s.editDay(ctx, day, func(rd *domain.RoutineDay) error {
		rd.Exercises = append(rd.Exercises, domain.Exercise{Name: name, Kind: kind, Sets: []domain.Set{{}}})
		return nil
	})
}

// RenameExercise changes the name of exercise ex.
func (s *RoutineService) RenameExercise(ctx context.Context, day string, ex int, name string) (domain.RoutineDay, error) {
	return s.UpdateExercise(ctx, day, ex, ExerciseUpdate{Name: &name})
}

// UpdateExercise changes the name or kind of exercise ex.
func (s *RoutineService) UpdateExercise(ctx context.Context, day string, ex int, u ExerciseUpdate) (domain.RoutineDay, error) {
	var name, kind string
	if u.Name != nil {
		if name = strings.TrimSpace(*u.Name); name == "" {
			return domain.RoutineDay{}, errors.New("exercise name must not be empty")
		}
	}
	if u.Kind != nil {
		var err error
		if kind, err = parseKind(*u.Kind); err != nil {
			return domain.RoutineDay{}, err
		}
	}
	return s.editDay(ctx, day, func(rd *domain.RoutineDay) error {
		if err := checkIndex("exercise", ex, len(rd.Exercises)); err != nil {
			return err
		}
		if name != "" {
			rd.Exercises[ex].Name = name
		}
		if kind != "" {
			rd.Exercises[ex].Kind = kind
		}
		return nil
	})
}

// RemoveExercise deletes exercise ex.
func (s *RoutineService) RemoveExercise(ctx context.Context, day string, ex int) (domain.RoutineDay, error) {
	return s.editDay(ctx, day, func(rd *domain.RoutineDay) error {
		if err := checkIndex("exercise", ex, len(rd.Exercises)); err != nil {
			return err
		}
		rd.Exercises = append(rd.Exercises[:ex], rd.Exercises[ex+1:]...)
		return nil
	})
}

// AddSet appends a set to exercise ex, copying the previous set's values.
func (s *RoutineService) AddSet(ctx context.Context, day string, ex int) (domain.RoutineDay, error) {
	return s.editDay(ctx, day, func(rd *domain.RoutineDay) error {
		if err := checkIndex("exercise", ex, len(rd.Exercises)); err != nil {
			return err
		}
		sets := rd.Exercises[ex].Sets
		var next domain.Set
		if n := len(sets); n > 0 {
			next = sets[n-1]
		}
		rd.Exercises[ex].Sets = append(sets, next)
		return nil
	})
}

// UpdateSet changes the weight or reps of a planned set.
func (s *RoutineService) UpdateSet(ctx context.Context, day string, ex, set int, u SetUpdate) (domain.RoutineDay, error) {
	return s.editDay(ctx, day, func(rd *domain.RoutineDay) error {
		if err := checkIndex("exercise", ex, len(rd.Exercises)); err != nil {
			return err
		}
		sets := rd.Exercises[ex].Sets
		if err := checkIndex("set", set, len(sets)); err != nil {
			return err
		}
		if u.Weight != nil {
			sets[set].Weight = *u.Weight
		}
		if u.Reps != nil {
			sets[set].Reps = *u.Reps
		}
		return nil
	})
}

// RemoveSet deletes a planned set.
func (s *RoutineService) RemoveSet(ctx context.Context, day string, ex, set int) (domain.RoutineDay, error) {
	return s.editDay(ctx, day, func(rd *domain.RoutineDay) error {
		if err := checkIndex("exercise", ex, len(rd.Exercises)); err != nil {
			return err
		}
		sets := rd.Exercises[ex].Sets
		if err := checkIndex("set", set, len(sets)); err != nil {
			return err
		}
		rd.Exercises[ex].Sets = append(sets[:set], sets[set+1:]...)
		return nil
	})
}

func (s *RoutineService) editDay(ctx context.Context, day string, fn func(*domain.RoutineDay) error) (domain.RoutineDay, error) {
	d, err := parseDay(day)
	if err != nil {
		return domain.RoutineDay{}, err
	}
	r, err := s.routine.Update(ctx, func(r domain.WeeklyRoutine) (domain.WeeklyRoutine, error) {
		rd := r[d]
		if err := fn(&rd); err != nil {
			return nil, err
		}
		r[d] = rd
		return r, nil
	})
	if err != nil {
		return domain.RoutineDay{}, err
	}
	return r[d], nil
}

func parseDay(day string) (domain.Weekday, error) {
	d, ok := domain.ParseWeekday(day)
	if !ok {
		return "", fmt.Errorf("weekday %q: %w", day, domain.ErrNotFound)
	}
	return d, nil
}

func parseKind(kind string) (string, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return domain.KindWeight, nil
	}
	if !domain.ValidKind(kind) {
		return "", fmt.Errorf("exercise kind %q: want %s or %s", kind, domain.KindWeight, domain.KindCardio)
	}
	return kind, nil
}

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s %d: %w", what, i, domain.ErrNotFound)
	}
	return nil
}
