package app

import (
	"context"

	"fitdiary/internal/domain"
)

// EmptySessionMessage explains a session with nothing planned.
const EmptySessionMessage = "No exercises planned for this day. Add some in the weekly routine."

// Session is a training log as shown on the workout tab.
type Session struct {
	Log     domain.TrainingLog `json:"log"`
	Logged  bool               `json:"logged"`
	Empty   bool               `json:"empty"`
	Message string             `json:"message,omitempty"`
	Done    int                `json:"done"`
	Total   int                `json:"total"`
}

// TrainingService derives and edits per-date training sessions.
type TrainingService struct {
	routine  *Record[domain.WeeklyRoutine]
	training *Record[domain.TrainingLogs]
	clock    domain.Clock
}

// NewTrainingService creates a TrainingService.
func NewTrainingService(routine *Record[domain.WeeklyRoutine], training *Record[domain.TrainingLogs], clock domain.Clock) *TrainingService {
	return &TrainingService{routine: routine, training: training, clock: clock}
}

// Today returns today's session.
func (s *TrainingService) Today() Session {
	sess, _ := s.Get(s.clock.Today())
	return sess
}

// Get returns the logged session for date, or one materialized from the
// template of that date's weekday. Materialized sessions are not stored
// until a set is edited.
func (s *TrainingService) Get(date string) (Session, error) {
	log, logged, err := s.session(date)
	if err != nil {
		return Session{}, err
	}
	return newSession(log, logged), nil
}

// ToggleSet flips the done flag of a set.
func (s *TrainingService) ToggleSet(ctx context.Context, date string, ex, set int) (Session, error) {
	return s.editSet(ctx, date, ex, set, func(ls *domain.LoggedSet) {
		ls.Done = !ls.Done
	})
}

// UpdateSet changes the performed weight or reps of a set.
func (s *TrainingService) UpdateSet(ctx context.Context, date string, ex, set int, u SetUpdate) (Session, error) {
	return s.editSet(ctx, date, ex, set, func(ls *domain.LoggedSet) {
		if u.Weight != nil {
			ls.Weight = *u.Weight
		}
		if u.Reps != nil {
			ls.Reps = *u.Reps
		}
	})
}

func (s *TrainingService) editSet(ctx context.Context, date string, ex, set int, fn func(*domain.LoggedSet)) (Session, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return Session{}, err
	}
	routine := s.routine.Get()
	logs, err := s.training.Update(ctx, func(logs domain.TrainingLogs) (domain.TrainingLogs, error) {
		log, ok := logs[date]
		if !ok {
			log = materialize(routine, date)
		}
		if err := checkIndex("exercise", ex, len(log.Exercises)); err != nil {
			return nil, err
		}
		sets := log.Exercises[ex].Sets
		if err := checkIndex("set", set, len(sets)); err != nil {
			return nil, err
		}
		fn(&sets[set])
		logs[date] = log
		return logs, nil
	})
	if err != nil {
		return Session{}, err
	}
	return newSession(logs[date], true), nil
}

func (s *TrainingService) session(date string) (domain.TrainingLog, bool, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return domain.TrainingLog{}, false, err
	}
	if log, ok := s.training.Get()[date]; ok {
		return log, true, nil
	}
	return materialize(s.routine.Get(), date), false, nil
}

// CompletedSets returns the number of done sets logged on date.
func (s *TrainingService) CompletedSets(date string) int {
	done, _ := s.training.Get()[date].Progress()
	return done
}

func materialize(routine domain.WeeklyRoutine, date string) domain.TrainingLog {
	t, _ := domain.ParseDate(date)
	return domain.Materialize(routine, date, domain.WeekdayOf(t.Weekday()))
}

func newSession(log domain.TrainingLog, logged bool) Session {
	done, total := log.Progress()
	sess := Session{Log: log, Logged: logged, Done: done, Total: total}
	if len(log.Exercises) == 0 {
		sess.Empty = true
		sess.Message = EmptySessionMessage
	}
	return sess
}
