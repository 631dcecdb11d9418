package app

import "fitdiary/internal/domain"

// Ring is one progress ring of the home view. Goal is read from the current
// targets, so a target change shows on the next render.
type Ring struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Unit     string  `json:"unit"`
	Value    float64 `json:"value"`
	Goal     float64 `json:"goal"`
	Progress float64 `json:"progress"`
	Fraction float64 `json:"fraction"`
}

// WeightCard is the latest recorded weight.
type WeightCard struct {
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Date     string  `json:"date,omitempty"`
	Recorded bool    `json:"recorded"`
}

// Dashboard is the home view.
type Dashboard struct {
	Date       string     `json:"date"`
	Greeting   string     `json:"greeting"`
	Name       string     `json:"name"`
	Avatar     string     `json:"avatar,omitempty"`
	Rings      []Ring     `json:"rings"`
	KcalIntake float64    `json:"kcalIntake"`
	Activities int        `json:"activities"`
	Weight     WeightCard `json:"weight"`
	GoalMet    bool       `json:"goalMet"`
}

// DashboardService assembles the home view from the other records.
type DashboardService struct {
	state    *State
	training *TrainingService
	metrics  *MetricsService
	clock    domain.Clock
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(state *State, clock domain.Clock) *DashboardService {
	return &DashboardService{
		state:    state,
		training: NewTrainingService(state.Routine, state.Training, clock),
		metrics:  NewMetricsService(state.Metrics, clock),
		clock:    clock,
	}
}

// Today returns the home view for today.
func (s *DashboardService) Today() Dashboard {
	today := s.clock.Today()
	profile := s.state.Profile.Get()
	targets := s.state.Targets.Get()
	entry := s.state.Diary.Get()[today]

	d := Dashboard{
		Date:       today,
		Greeting:   profile.Tagline,
		Name:       profile.Name,
		Avatar:     profile.Avatar,
		Rings:      Rings(entry, targets),
		KcalIntake: entry.EffectiveCalories(),
		Activities: s.training.CompletedSets(today),
		Weight:     WeightCard{Unit: domain.UnitKg},
		GoalMet:    entry.MeetsTargets(targets),
	}
	if date, w, ok := s.metrics.LatestWeight(domain.UnitKg); ok {
		d.Weight = WeightCard{Value: w, Unit: domain.UnitKg, Date: date, Recorded: true}
	}
	return d
}

// Rings builds the protein, carbs, fat and water rings for entry.
func Rings(entry domain.DiaryEntry, targets domain.DailyTargets) []Ring {
	ring := func(key, label, unit string, value, goal float64) Ring {
		return Ring{
			Key:      key,
			Label:    label,
			Unit:     unit,
			Value:    value,
			Goal:     goal,
			Progress: domain.RingProgress(value, goal),
			Fraction: domain.RingFraction(value, goal),
		}
	}
	return []Ring{
		ring("protein", "Protein", "g", entry.Protein, targets.ProteinG),
		ring("carbs", "Carbs", "g", entry.Carbs, targets.CarbsG),
		ring("fat", "Fat", "g", entry.Fat, targets.FatG),
		ring("water", "Water", "ml", entry.Water, targets.WaterML),
	}
}
