package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Meal is one entry of the diet log.
type Meal struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Veggies float64 `json:"veggies"`
	Photo   string  `json:"photo,omitempty"`
}

// NewMeal returns an empty meal with a fresh id.
func NewMeal(name string) Meal {
	return Meal{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
}

// Calories returns the macro-derived calories of the meal. Veggies are
// tracked by weight only.
func (m Meal) Calories() float64 {
	return MacroCalories(m.Protein, m.Carbs, m.Fat)
}

// Meals is the ordered diet log. It never becomes empty.
type Meals []Meal

// DefaultMealNames are the meals a fresh log starts with.
var DefaultMealNames = []string{"Breakfast", "Lunch", "Dinner", "Snacks"}

// DefaultMeals returns the starting meal list.
func DefaultMeals() Meals {
	out := make(Meals, len(DefaultMealNames))
	for i, name := range DefaultMealNames {
		out[i] = NewMeal(name)
	}
	return out
}

// Clone returns a copy of the list.
func (ms Meals) Clone() Meals {
	out := make(Meals, len(ms))
	copy(out, ms)
	return out
}

// Normalized restores the defaults for an empty list, assigns missing ids and
// coerces macros.
func (ms Meals) Normalized() Meals {
	if len(ms) == 0 {
		return DefaultMeals()
	}
	out := make(Meals, len(ms))
	seen := make(map[string]bool, len(ms))
	for i, m := range ms {
		if m.ID == "" || seen[m.ID] {
			m.ID = uuid.NewString()
		}
		seen[m.ID] = true
		m.Protein = NonNegative(m.Protein)
		m.Carbs = NonNegative(m.Carbs)
		m.Fat = NonNegative(m.Fat)
		m.Veggies = NonNegative(m.Veggies)
		out[i] = m
	}
	return out
}

// Index returns the position of the meal with id, or -1.
func (ms Meals) Index(id string) int {
	for i, m := range ms {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// MacroTotals sums the macros of a meal list.
type MacroTotals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Veggies  float64 `json:"veggies"`
	Calories float64 `json:"calories"`
}

// Totals sums every meal.
func (ms Meals) Totals() MacroTotals {
	var t MacroTotals
	for _, m := range ms {
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
		t.Veggies += m.Veggies
	}
	t.Calories = MacroCalories(t.Protein, t.Carbs, t.Fat)
	return t
}
