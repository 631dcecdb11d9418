package adapthttp

import (
	"net/http"

	"fitdiary/internal/domain"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Dashboard.Today())
}

func (s *Server) handleWaterToday(w http.ResponseWriter, r *http.Request) {
	today := s.svc.Diary.Today()
	writeJSON(w, http.StatusOK, map[string]any{"today": today.Date, "totalMl": s.svc.Water.GetTodayTotal()})
}

func (s *Server) handleWaterAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DeltaML domain.Amount `json:"deltaMl"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day, err := s.svc.Water.AddToday(r.Context(), body.DeltaML.Float())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": day.Date, "totalMl": day.Entry.Water, "entry": day.Entry})
}
