package app

import (
	"context"

	"fitdiary/internal/domain"

	log "github.com/sirupsen/logrus"
)

// State is the root application state: one slot per named record.
type State struct {
	Profile  *Record[domain.Profile]
	Targets  *Record[domain.DailyTargets]
	Diary    *Record[domain.Diary]
	Routine  *Record[domain.WeeklyRoutine]
	Training *Record[domain.TrainingLogs]
	Meals    *Record[domain.Meals]
	Metrics  *Record[domain.MetricsLog]
}

// NewState creates the state backed by store. Call Rehydrate before use.
func NewState(store domain.RecordStore) *State {
	return &State{
		Profile:  NewRecord(domain.KeyProfile, store, domain.DefaultProfile),
		Targets:  NewRecord(domain.KeyTargets, store, domain.DefaultTargets),
		Diary:    NewRecord(domain.KeyDiary, store, domain.DefaultDiary),
		Routine:  NewRecord(domain.KeyRoutine, store, domain.DefaultRoutine),
		Training: NewRecord(domain.KeyTraining, store, domain.DefaultTrainingLogs),
		Meals:    NewRecord(domain.KeyMeals, store, domain.DefaultMeals),
		Metrics:  NewRecord(domain.KeyMetrics, store, domain.DefaultMetricsLog),
	}
}

type rehydrater interface {
	Rehydrate(ctx context.Context)
	OnSaveError(fn SaveErrorFunc)
	Key() domain.RecordKey
}

func (s *State) records() []rehydrater {
	return []rehydrater{s.Profile, s.Targets, s.Diary, s.Routine, s.Training, s.Meals, s.Metrics}
}

// Rehydrate loads every record from the store, falling back to defaults.
func (s *State) Rehydrate(ctx context.Context) {
	for _, r := range s.records() {
		r.Rehydrate(ctx)
		log.Debugf("rehydrated %s", r.Key())
	}
}

// OnSaveError registers fn on every record.
func (s *State) OnSaveError(fn SaveErrorFunc) {
	for _, r := range s.records() {
		r.OnSaveError(fn)
	}
}
