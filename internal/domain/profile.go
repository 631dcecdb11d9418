package domain

// Profile is the settings-tab record.
type Profile struct {
	Name          string  `json:"name"`
	Tagline       string  `json:"tagline"`
	TrainingYears float64 `json:"trainingYears"`
	Avatar        string  `json:"avatar,omitempty"`
	Notifications bool    `json:"notifications"`
}

// DefaultProfile returns the profile used before anything was saved.
func DefaultProfile() Profile {
	return Profile{
		Name:          "Athlete",
		Tagline:       "今天也要保持平衡",
		Notifications: true,
	}
}

// Clone returns a copy of p.
func (p Profile) Clone() Profile {
	return p
}

// Normalized coerces numeric fields.
func (p Profile) Normalized() Profile {
	p.TrainingYears = NonNegative(p.TrainingYears)
	return p
}

// DailyTargets are the daily goals used as ring denominators.
type DailyTargets struct {
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
	WaterML  float64 `json:"waterMl"`
}

// DefaultTargets returns the targets used before anything was saved.
func DefaultTargets() DailyTargets {
	return DailyTargets{ProteinG: 150, CarbsG: 250, FatG: 70, WaterML: 3000}
}

// Clone returns a copy of t.
func (t DailyTargets) Clone() DailyTargets {
	return t
}

// Normalized coerces numeric fields.
func (t DailyTargets) Normalized() DailyTargets {
	t.ProteinG = NonNegative(t.ProteinG)
	t.CarbsG = NonNegative(t.CarbsG)
	t.FatG = NonNegative(t.FatG)
	t.WaterML = NonNegative(t.WaterML)
	return t
}

// Calories returns the calorie goal implied by the macro targets.
func (t DailyTargets) Calories() float64 {
	return MacroCalories(t.ProteinG, t.CarbsG, t.FatG)
}

// MacroCalories converts macro grams to kcal (4/4/9).
func MacroCalories(protein, carbs, fat float64) float64 {
	return protein*4 + carbs*4 + fat*9
}
