package adapthttp

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fitdiary/internal/app"
	"fitdiary/internal/domain"
)

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))

	view, err := s.svc.Calendar.Month(year, month, q.Get("selected"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDiaryToday(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Diary.Today())
}

func (s *Server) handleDiaryGet(w http.ResponseWriter, r *http.Request) {
	day, err := s.svc.Diary.Get(mux.Vars(r)["date"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleDiaryPut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Protein    *domain.Amount `json:"protein"`
		Carbs      *domain.Amount `json:"carbs"`
		Fat        *domain.Amount `json:"fat"`
		Water      *domain.Amount `json:"water"`
		Calories   *domain.Amount `json:"calories"`
		SleepHours *domain.Amount `json:"sleepHours"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day, err := s.svc.Diary.Save(r.Context(), mux.Vars(r)["date"], app.DiaryUpdate{
		Protein:    amount(body.Protein),
		Carbs:      amount(body.Carbs),
		Fat:        amount(body.Fat),
		Water:      amount(body.Water),
		Calories:   amount(body.Calories),
		SleepHours: amount(body.SleepHours),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}
