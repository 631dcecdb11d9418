package app

import (
	"context"
	"errors"

	"fitdiary/internal/domain"
)

// WaterService handles the quick water buttons on the home view. Water is
// stored in the diary entry of the day.
type WaterService struct {
	diary   *Record[domain.Diary]
	targets *Record[domain.DailyTargets]
	clock   domain.Clock
}

// NewWaterService creates a WaterService.
func NewWaterService(diary *Record[domain.Diary], targets *Record[domain.DailyTargets], clock domain.Clock) *WaterService {
	return &WaterService{diary: diary, targets: targets, clock: clock}
}

// GetTodayTotal returns today's water intake in ml.
func (s *WaterService) GetTodayTotal() float64 {
	return s.diary.Get()[s.clock.Today()].Water
}

// AddToday adds deltaML to today's intake. Negative deltas undo a tap but
// never take the total below zero.
func (s *WaterService) AddToday(ctx context.Context, deltaML float64) (DayEntry, error) {
	if deltaML == 0 || deltaML < -5000 || deltaML > 5000 {
		return DayEntry{}, errors.New("deltaMl must be non-zero and within [-5000, 5000]")
	}
	today := s.clock.Today()
	targets := s.targets.Get()
	diary, err := s.diary.Update(ctx, func(d domain.Diary) (domain.Diary, error) {
		e := d[today]
		e.Water = domain.NonNegative(e.Water + deltaML)
		e.GoalMet = e.MeetsTargets(targets)
		d[today] = e
		return d, nil
	})
	if err != nil {
		return DayEntry{}, err
	}
	return DayEntry{Date: today, Entry: diary[today]}, nil
}
