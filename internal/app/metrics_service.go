package app

import (
	"context"
	"errors"
	"sort"

	"fitdiary/internal/domain"
)

// MetricsUpdate carries the measurements to change; nil fields are kept.
// Weight is given in Unit, which defaults to kg.
type MetricsUpdate struct {
	Weight       *float64
	Unit         string
	GripStrength *float64
	SleepHours   *float64
	WaterML      *float64
}

// DayMetrics is a measurement record together with its date key.
type DayMetrics struct {
	Date    string             `json:"date"`
	Metrics domain.BodyMetrics `json:"metrics"`
}

// MetricsService encapsulates the metrics-tab use cases.
type MetricsService struct {
	metrics *Record[domain.MetricsLog]
	clock   domain.Clock
}

// NewMetricsService creates a MetricsService.
func NewMetricsService(metrics *Record[domain.MetricsLog], clock domain.Clock) *MetricsService {
	return &MetricsService{metrics: metrics, clock: clock}
}

// Today returns today's measurements.
func (s *MetricsService) Today() DayMetrics {
	today := s.clock.Today()
	return DayMetrics{Date: today, Metrics: s.metrics.Get()[today]}
}

// Get returns the measurements for date.
func (s *MetricsService) Get(date string) (DayMetrics, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return DayMetrics{}, err
	}
	return DayMetrics{Date: date, Metrics: s.metrics.Get()[date]}, nil
}

// Save validates u and stores it for date. Weights are stored in kg.
func (s *MetricsService) Save(ctx context.Context, date string, u MetricsUpdate) (DayMetrics, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return DayMetrics{}, err
	}
	unit := u.Unit
	if unit == "" {
		unit = domain.UnitKg
	}
	if !domain.ValidWeightUnit(unit) {
		return DayMetrics{}, errors.New("unit must be \"kg\" or \"lb\"")
	}
	if u.Weight != nil && *u.Weight < 0 {
		return DayMetrics{}, errors.New("weight must be >= 0")
	}

	log, err := s.metrics.Update(ctx, func(l domain.MetricsLog) (domain.MetricsLog, error) {
		m := l[date]
		if u.Weight != nil {
			m.WeightKg = domain.ConvertWeight(*u.Weight, unit, domain.UnitKg)
		}
		if u.GripStrength != nil {
			m.GripStrengthKg = *u.GripStrength
		}
		if u.SleepHours != nil {
			m.SleepHours = *u.SleepHours
		}
		if u.WaterML != nil {
			m.WaterML = *u.WaterML
		}
		l[date] = m
		return l, nil
	})
	if err != nil {
		return DayMetrics{}, err
	}
	return DayMetrics{Date: date, Metrics: log[date]}, nil
}

// ListRecent returns up to limit dated records, newest first.
func (s *MetricsService) ListRecent(limit int) []DayMetrics {
	log := s.metrics.Get()
	out := make([]DayMetrics, 0, len(log))
	for date, m := range log {
		out = append(out, DayMetrics{Date: date, Metrics: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LatestWeight returns the most recent weight on or before today, in unit.
func (s *MetricsService) LatestWeight(unit string) (date string, value float64, ok bool) {
	date, kg, ok := s.metrics.Get().LatestWeight(s.clock.Today())
	if !ok {
		return "", 0, false
	}
	return date, domain.ConvertWeight(kg, domain.UnitKg, unit), true
}
