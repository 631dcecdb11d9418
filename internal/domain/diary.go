package domain

import "maps"

// DiaryEntry is the nutrition and hydration record for one date.
type DiaryEntry struct {
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Water      float64 `json:"water"`
	Calories   float64 `json:"calories,omitempty"`
	SleepHours float64 `json:"sleepHours,omitempty"`
	GoalMet    bool    `json:"goalMet"`
}

// Normalized coerces numeric fields.
func (e DiaryEntry) Normalized() DiaryEntry {
	e.Protein = NonNegative(e.Protein)
	e.Carbs = NonNegative(e.Carbs)
	e.Fat = NonNegative(e.Fat)
	e.Water = NonNegative(e.Water)
	e.Calories = NonNegative(e.Calories)
	e.SleepHours = NonNegative(e.SleepHours)
	return e
}

// EffectiveCalories returns the logged calories, or the macro-derived value
// when none were logged.
func (e DiaryEntry) EffectiveCalories() float64 {
	if e.Calories > 0 {
		return e.Calories
	}
	return MacroCalories(e.Protein, e.Carbs, e.Fat)
}

// MeetsTargets reports whether every macro and water reached its target.
func (e DiaryEntry) MeetsTargets(t DailyTargets) bool {
	return e.Protein >= t.ProteinG &&
		e.Carbs >= t.CarbsG &&
		e.Fat >= t.FatG &&
		e.Water >= t.WaterML
}

// IsZero reports whether nothing was logged.
func (e DiaryEntry) IsZero() bool {
	return e == DiaryEntry{}
}

// Diary maps ISO dates to entries.
type Diary map[string]DiaryEntry

// DefaultDiary returns an empty diary.
func DefaultDiary() Diary {
	return Diary{}
}

// Clone returns a copy of d.
func (d Diary) Clone() Diary {
	out := make(Diary, len(d))
	maps.Copy(out, d)
	return out
}

// Normalized drops entries with malformed date keys and coerces values.
func (d Diary) Normalized() Diary {
	out := make(Diary, len(d))
	for date, e := range d {
		if !ValidDate(date) {
			continue
		}
		out[date] = e.Normalized()
	}
	return out
}
