package adapthttp

import (
	"net/http"

	"fitdiary/internal/app"
	"fitdiary/internal/domain"
)

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Profile.Get())
}

func (s *Server) handleProfilePut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name          *string        `json:"name"`
		Tagline       *string        `json:"tagline"`
		TrainingYears *domain.Amount `json:"trainingYears"`
		Notifications *bool          `json:"notifications"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.svc.Profile.Update(r.Context(), app.ProfileUpdate{
		Name:          body.Name,
		Tagline:       body.Tagline,
		TrainingYears: amount(body.TrainingYears),
		Notifications: body.Notifications,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAvatarSet(w http.ResponseWriter, r *http.Request) {
	dataURL, err := s.readPhoto(w, r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	p, err := s.svc.Profile.SetAvatar(r.Context(), dataURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAvatarClear(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Profile.SetAvatar(r.Context(), "")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleTargetsGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Targets.Get())
}

func (s *Server) handleTargetsPut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProteinG *domain.Amount `json:"proteinG"`
		CarbsG   *domain.Amount `json:"carbsG"`
		FatG     *domain.Amount `json:"fatG"`
		WaterML  *domain.Amount `json:"waterMl"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := s.svc.Targets.Update(r.Context(), app.TargetsUpdate{
		ProteinG: amount(body.ProteinG),
		CarbsG:   amount(body.CarbsG),
		FatG:     amount(body.FatG),
		WaterML:  amount(body.WaterML),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
