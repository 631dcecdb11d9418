package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"

	"fitdiary/internal/app"
	"fitdiary/internal/domain"
)

type setBody struct {
	Weight *domain.Amount `json:"weight"`
	Reps   *domain.Amount `json:"reps"`
}

func (b setBody) update() app.SetUpdate {
	return app.SetUpdate{Weight: amount(b.Weight), Reps: amount(b.Reps)}
}

type exerciseBody struct {
	Name *string `json:"name"`
	Kind *string `json:"kind"`
}

func (b exerciseBody) update() app.ExerciseUpdate {
	return app.ExerciseUpdate{Name: b.Name, Kind: b.Kind}
}

func (s *Server) handleRoutineGet(w http.ResponseWriter, r *http.Request) {
	routine := s.svc.Routine.Get()
	days := make([]map[string]any, 0, len(domain.Weekdays))
	for _, d := range domain.Weekdays {
		days = append(days, map[string]any{"day": d, "routine": routine[d]})
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days})
}

func (s *Server) handleRoutineDayGet(w http.ResponseWriter, r *http.Request) {
	day, err := s.svc.Routine.Day(mux.Vars(r)["day"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleRoutineLabel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Label string `json:"label"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeRoutineDay(w)(s.svc.Routine.SetLabel(r.Context(), mux.Vars(r)["day"], body.Label))
}

func (s *Server) handleExerciseAdd(w http.ResponseWriter, r *http.Request) {
	var body exerciseBody
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var name, kind string
	if body.Name != nil {
		name = *body.Name
	}
	if body.Kind != nil {
		kind = *body.Kind
	}
	s.writeRoutineDay(w)(s.svc.Routine.AddExercise(r.Context(), mux.Vars(r)["day"], name, kind))
}

func (s *Server) handleExerciseUpdate(w http.ResponseWriter, r *http.Request) {
	ex, err := pathIndex(r, "ex")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var body exerciseBody
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeRoutineDay(w)(s.svc.Routine.UpdateExercise(r.Context(), mux.Vars(r)["day"], ex, body.update()))
}

func (s *Server) handleExerciseRemove(w http.ResponseWriter, r *http.Request) {
	ex, err := pathIndex(r, "ex")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	s.writeRoutineDay(w)(s.svc.Routine.RemoveExercise(r.Context(), mux.Vars(r)["day"], ex))
}

func (s *Server) handleSetAdd(w http.ResponseWriter, r *http.Request) {
	ex, err := pathIndex(r, "ex")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	s.writeRoutineDay(w)(s.svc.Routine.AddSet(r.Context(), mux.Vars(r)["day"], ex))
}

func (s *Server) handleSetUpdate(w http.ResponseWriter, r *http.Request) {
	ex, set, err := exerciseAndSet(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var body setBody
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeRoutineDay(w)(s.svc.Routine.UpdateSet(r.Context(), mux.Vars(r)["day"], ex, set, body.update()))
}

func (s *Server) handleSetRemove(w http.ResponseWriter, r *http.Request) {
	ex, set, err := exerciseAndSet(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	s.writeRoutineDay(w)(s.svc.Routine.RemoveSet(r.Context(), mux.Vars(r)["day"], ex, set))
}

func (s *Server) handleTrainingToday(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Training.Today())
}

func (s *Server) handleTrainingGet(w http.ResponseWriter, r *http.Request) {
	s.writeSession(w)(s.svc.Training.Get(mux.Vars(r)["date"]))
}

func (s *Server) handleTrainingToggle(w http.ResponseWriter, r *http.Request) {
	ex, set, err := exerciseAndSet(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	s.writeSession(w)(s.svc.Training.ToggleSet(r.Context(), mux.Vars(r)["date"], ex, set))
}

func (s *Server) handleTrainingSetUpdate(w http.ResponseWriter, r *http.Request) {
	ex, set, err := exerciseAndSet(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var body setBody
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeSession(w)(s.svc.Training.UpdateSet(r.Context(), mux.Vars(r)["date"], ex, set, body.update()))
}

func (s *Server) writeRoutineDay(w http.ResponseWriter) func(domain.RoutineDay, error) {
	return func(day domain.RoutineDay, err error) {
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, day)
	}
}

func (s *Server) writeSession(w http.ResponseWriter) func(app.Session, error) {
	return func(sess app.Session, err error) {
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

func exerciseAndSet(r *http.Request) (int, int, error) {
	ex, err := pathIndex(r, "ex")
	if err != nil {
		return 0, 0, err
	}
	set, err := pathIndex(r, "set")
	if err != nil {
		return 0, 0, err
	}
	return ex, set, nil
}
