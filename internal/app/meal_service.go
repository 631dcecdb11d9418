package app

import (
	"context"
	"fmt"
	"strings"

	"fitdiary/internal/domain"
)

// MealUpdate carries the meal fields to change; nil fields are kept.
type MealUpdate struct {
	Name    *string
	Protein *float64
	Carbs   *float64
	Fat     *float64
	Veggies *float64
}

// MealList is the diet tab: the meals and their totals.
type MealList struct {
	Meals  domain.Meals       `json:"meals"`
	Totals domain.MacroTotals `json:"totals"`
}

// MealService encapsulates the diet-tab use cases.
type MealService struct {
	meals *Record[domain.Meals]
}

// NewMealService creates a MealService.
func NewMealService(meals *Record[domain.Meals]) *MealService {
	return &MealService{meals: meals}
}

// List returns every meal with the totals.
func (s *MealService) List() MealList {
	return newMealList(s.meals.Get())
}

// Add appends a meal. A blank name becomes "Meal N".
func (s *MealService) Add(ctx context.Context, name string) (domain.Meal, error) {
	var added domain.Meal
	_, err := s.meals.Update(ctx, func(ms domain.Meals) (domain.Meals, error) {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Meal %d", len(ms)+1)
		}
		added = domain.NewMeal(name)
		return append(ms, added), nil
	})
	return added, err
}

// Update applies u to the meal with id.
func (s *MealService) Update(ctx context.Context, id string, u MealUpdate) (domain.Meal, error) {
	return s.editMeal(ctx, id, func(m *domain.Meal) {
		if u.Name != nil {
			if name := strings.TrimSpace(*u.Name); name != "" {
				m.Name = name
			}
		}
		if u.Protein != nil {
			m.Protein = *u.Protein
		}
		if u.Carbs != nil {
			m.Carbs = *u.Carbs
		}
		if u.Fat != nil {
			m.Fat = *u.Fat
		}
		if u.Veggies != nil {
			m.Veggies = *u.Veggies
		}
	})
}

// Remove deletes the meal with id. Removing the last meal is a no-op and
// reports false.
func (s *MealService) Remove(ctx context.Context, id string) (bool, error) {
	removed := false
	_, err := s.meals.Update(ctx, func(ms domain.Meals) (domain.Meals, error) {
		i := ms.Index(id)
		if i < 0 {
			return nil, fmt.Errorf("meal %q: %w", id, domain.ErrNotFound)
		}
		if len(ms) == 1 {
			return ms, nil
		}
		removed = true
		return append(ms[:i], ms[i+1:]...), nil
	})
	return removed, err
}

// SetPhoto attaches an encoded image to the meal. An empty dataURL clears it.
func (s *MealService) SetPhoto(ctx context.Context, id, dataURL string) (domain.Meal, error) {
	return s.editMeal(ctx, id, func(m *domain.Meal) {
		m.Photo = dataURL
	})
}

// Totals sums the macros of every meal.
func (s *MealService) Totals() domain.MacroTotals {
	return s.meals.Get().Totals()
}

func (s *MealService) editMeal(ctx context.Context, id string, fn func(*domain.Meal)) (domain.Meal, error) {
	ms, err := s.meals.Update(ctx, func(ms domain.Meals) (domain.Meals, error) {
		i := ms.Index(id)
		if i < 0 {
			return nil, fmt.Errorf("meal %q: %w", id, domain.ErrNotFound)
		}
		fn(&ms[i])
		return ms, nil
	})
	if err != nil {
		return domain.Meal{}, err
	}
	return ms[ms.Index(id)], nil
}

func newMealList(ms domain.Meals) MealList {
	return MealList{Meals: ms, Totals: ms.Totals()}
}
