package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"

	"fitdiary/internal/app"
	"fitdiary/internal/domain"
)

// photoField is the multipart field carrying an uploaded image.
const photoField = "photo"

func (s *Server) handleMealsList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Meals.List())
}

func (s *Server) handleMealAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if r.ContentLength != 0 {
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	meal, err := s.svc.Meals.Add(r.Context(), body.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, meal)
}

func (s *Server) handleMealUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    *string        `json:"name"`
		Protein *domain.Amount `json:"protein"`
		Carbs   *domain.Amount `json:"carbs"`
		Fat     *domain.Amount `json:"fat"`
		Veggies *domain.Amount `json:"veggies"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	meal, err := s.svc.Meals.Update(r.Context(), mux.Vars(r)["id"], app.MealUpdate{
		Name:    body.Name,
		Protein: amount(body.Protein),
		Carbs:   amount(body.Carbs),
		Fat:     amount(body.Fat),
		Veggies: amount(body.Veggies),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

func (s *Server) handleMealRemove(w http.ResponseWriter, r *http.Request) {
	removed, err := s.svc.Meals.Remove(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"removed": removed, "meals": s.svc.Meals.List()})
}

func (s *Server) handleMealPhotoSet(w http.ResponseWriter, r *http.Request) {
	dataURL, err := s.readPhoto(w, r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	meal, err := s.svc.Meals.SetPhoto(r.Context(), mux.Vars(r)["id"], dataURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

func (s *Server) handleMealPhotoClear(w http.ResponseWriter, r *http.Request) {
	meal, err := s.svc.Meals.SetPhoto(r.Context(), mux.Vars(r)["id"], "")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

// readPhoto reads the uploaded image to completion and encodes it as a data
// URL. The body is capped slightly above the image limit to leave room for
// multipart framing.
func (s *Server) readPhoto(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+64<<10)
	file, _, err := r.FormFile(photoField)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return app.EncodeDataURL(file, s.maxUpload)
}
