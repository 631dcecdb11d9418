package domain

// LoggedSet is one performed set with its completion flag.
type LoggedSet struct {
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
	Done   bool    `json:"done"`
}

// LoggedExercise is an exercise as performed on a date.
type LoggedExercise struct {
	Name string      `json:"name"`
	Kind string      `json:"kind"`
	Sets []LoggedSet `json:"sets"`
}

// TrainingLog is the session for one date. Once logged it no longer follows
// the routine template.
type TrainingLog struct {
	Date      string           `json:"date"`
	Weekday   Weekday          `json:"weekday"`
	Label     string           `json:"label"`
	Exercises []LoggedExercise `json:"exercises"`
}

// Clone deep-copies the log.
func (l TrainingLog) Clone() TrainingLog {
	out := l
	out.Exercises = make([]LoggedExercise, len(l.Exercises))
	for i, ex := range l.Exercises {
		sets := make([]LoggedSet, len(ex.Sets))
		copy(sets, ex.Sets)
		out.Exercises[i] = LoggedExercise{Name: ex.Name, Kind: ex.Kind, Sets: sets}
	}
	return out
}

// Progress returns the number of completed sets and the total.
func (l TrainingLog) Progress() (done, total int) {
	for _, ex := range l.Exercises {
		for _, s := range ex.Sets {
			total++
			if s.Done {
				done++
			}
		}
	}
	return done, total
}

// Materialize derives a fresh session for date from the weekday template.
// Names, kinds, weights and reps are copied and every set starts not done.
func Materialize(routine WeeklyRoutine, date string, day Weekday) TrainingLog {
	tpl := routine[day]
	log := TrainingLog{
		Date:      date,
		Weekday:   day,
		Label:     tpl.Label,
		Exercises: make([]LoggedExercise, 0, len(tpl.Exercises)),
	}
	for _, ex := range tpl.Exercises {
		sets := make([]LoggedSet, len(ex.Sets))
		for i, s := range ex.Sets {
			sets[i] = LoggedSet{Weight: s.Weight, Reps: s.Reps}
		}
		log.Exercises = append(log.Exercises, LoggedExercise{Name: ex.Name, Kind: ex.Kind, Sets: sets})
	}
	return log
}

// TrainingLogs maps ISO dates to logged sessions.
type TrainingLogs map[string]TrainingLog

// DefaultTrainingLogs returns no sessions.
func DefaultTrainingLogs() TrainingLogs {
	return TrainingLogs{}
}

// Clone deep-copies every session.
func (t TrainingLogs) Clone() TrainingLogs {
	out := make(TrainingLogs, len(t))
	for date, l := range t {
		out[date] = l.Clone()
	}
	return out
}

// Normalized drops malformed date keys and coerces set values.
func (t TrainingLogs) Normalized() TrainingLogs {
	out := make(TrainingLogs, len(t))
	for date, l := range t {
		if !ValidDate(date) {
			continue
		}
		l = l.Clone()
		l.Date = date
		for i := range l.Exercises {
			if !ValidKind(l.Exercises[i].Kind) {
				l.Exercises[i].Kind = KindWeight
			}
			if l.Exercises[i].Sets == nil {
				l.Exercises[i].Sets = []LoggedSet{}
			}
			for j := range l.Exercises[i].Sets {
				s := &l.Exercises[i].Sets[j]
				s.Weight = NonNegative(s.Weight)
				s.Reps = NonNegative(s.Reps)
			}
		}
		out[date] = l
	}
	return out
}
