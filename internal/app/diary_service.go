package app

import (
	"context"

	"fitdiary/internal/domain"
)

// DiaryUpdate carries the diary fields to change; nil fields are kept.
type DiaryUpdate struct {
	Protein    *float64
	Carbs      *float64
	Fat        *float64
	Water      *float64
	Calories   *float64
	SleepHours *float64
}

// DayEntry is a diary entry together with its date key.
type DayEntry struct {
	Date  string            `json:"date"`
	Entry domain.DiaryEntry `json:"entry"`
}

// DiaryService encapsulates the calendar-tab diary use cases.
type DiaryService struct {
	diary   *Record[domain.Diary]
	targets *Record[domain.DailyTargets]
	clock   domain.Clock
}

// NewDiaryService creates a DiaryService.
func NewDiaryService(diary *Record[domain.Diary], targets *Record[domain.DailyTargets], clock domain.Clock) *DiaryService {
	return &DiaryService{diary: diary, targets: targets, clock: clock}
}

// Today returns today's entry, zero-valued if nothing was logged.
func (s *DiaryService) Today() DayEntry {
	today := s.clock.Today()
	return DayEntry{Date: today, Entry: s.diary.Get()[today]}
}

// Get returns the entry for date, zero-valued if nothing was logged.
func (s *DiaryService) Get(date string) (DayEntry, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return DayEntry{}, err
	}
	return DayEntry{Date: date, Entry: s.diary.Get()[date]}, nil
}

// Save applies u to the entry for date and recomputes goalMet against the
// current targets.
func (s *DiaryService) Save(ctx context.Context, date string, u DiaryUpdate) (DayEntry, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return DayEntry{}, err
	}
	targets := s.targets.Get()
	diary, err := s.diary.Update(ctx, func(d domain.Diary) (domain.Diary, error) {
		e := d[date]
		applyDiaryUpdate(&e, u)
		e = e.Normalized()
		e.GoalMet = e.MeetsTargets(targets)
		d[date] = e
		return d, nil
	})
	if err != nil {
		return DayEntry{}, err
	}
	return DayEntry{Date: date, Entry: diary[date]}, nil
}

func applyDiaryUpdate(e *domain.DiaryEntry, u DiaryUpdate) {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&e.Protein, u.Protein)
	set(&e.Carbs, u.Carbs)
	set(&e.Fat, u.Fat)
	set(&e.Water, u.Water)
	set(&e.Calories, u.Calories)
	set(&e.SleepHours, u.SleepHours)
}
