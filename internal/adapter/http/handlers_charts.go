package adapthttp

import (
	"net/http"

	"fitdiary/internal/domain"
)

func (s *Server) handleChartsDaily(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 30)
	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = domain.UnitKg
	}

	points, err := s.svc.Charts.GetDaily(days, unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"days":  len(points),
		"unit":  unit,
		"today": s.svc.Diary.Today().Date,
		"items": points,
	})
}
