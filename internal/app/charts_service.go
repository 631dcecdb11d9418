package app

import (
	"errors"

	"fitdiary/internal/domain"
)

// ChartsService builds the trend data shown on the metrics tab.
type ChartsService struct {
	diary   *Record[domain.Diary]
	metrics *Record[domain.MetricsLog]
	clock   domain.Clock
}

// NewChartsService creates a ChartsService.
func NewChartsService(diary *Record[domain.Diary], metrics *Record[domain.MetricsLog], clock domain.Clock) *ChartsService {
	return &ChartsService{diary: diary, metrics: metrics, clock: clock}
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day      string       `json:"day"`
	WaterML  float64      `json:"waterMl"`
	Calories float64      `json:"calories"`
	GoalMet  bool         `json:"goalMet"`
	Weight   *WeightPoint `json:"weight"`
}

// WeightPoint is the optional weight value within a DayPoint.
type WeightPoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GetDaily returns per-day chart data for the last days days ending today,
// with weights converted to the requested unit.
func (s *ChartsService) GetDaily(days int, unit string) ([]DayPoint, error) {
	if !domain.ValidWeightUnit(unit) {
		return nil, errors.New("unit must be \"kg\" or \"lb\"")
	}
	if days < 1 {
		days = 1
	}
	if days > 366 {
		days = 366
	}

	diary := s.diary.Get()
	metrics := s.metrics.Get()
	today := s.clock.Time()
	points := make([]DayPoint, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(domain.DateLayout)
		entry := diary[day]
		p := DayPoint{
			Day:      day,
			WaterML:  entry.Water,
			Calories: entry.EffectiveCalories(),
			GoalMet:  entry.GoalMet,
		}
		if m, ok := metrics[day]; ok && m.WeightKg > 0 {
			p.Weight = &WeightPoint{Value: domain.ConvertWeight(m.WeightKg, domain.UnitKg, unit), Unit: unit}
		}
		points = append(points, p)
	}
	return points, nil
}
