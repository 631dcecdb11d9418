package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"

	"fitdiary/internal/app"
	"fitdiary/internal/domain"
)

func (s *Server) handleMetricsToday(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Metrics.Today())
}

func (s *Server) handleMetricsRecent(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 30)
	writeJSON(w, http.StatusOK, map[string]any{"items": s.svc.Metrics.ListRecent(limit)})
}

func (s *Server) handleMetricsGet(w http.ResponseWriter, r *http.Request) {
	day, err := s.svc.Metrics.Get(mux.Vars(r)["date"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleMetricsPut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Weight       *domain.Amount `json:"weight"`
		Unit         string         `json:"unit"`
		GripStrength *domain.Amount `json:"gripStrengthKg"`
		SleepHours   *domain.Amount `json:"sleepHours"`
		WaterML      *domain.Amount `json:"waterMl"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day, err := s.svc.Metrics.Save(r.Context(), mux.Vars(r)["date"], app.MetricsUpdate{
		Weight:       amount(body.Weight),
		Unit:         body.Unit,
		GripStrength: amount(body.GripStrength),
		SleepHours:   amount(body.SleepHours),
		WaterML:      amount(body.WaterML),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}
