package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"fitdiary/internal/app"
	"fitdiary/internal/telemetry/metrics"
)

const defaultMaxUploadBytes = 5 << 20

// Options configures the HTTP adapter.
type Options struct {
	WebDir         string
	MaxUploadBytes int64
	AllowedOrigins []string
	Metrics        *metrics.Manager
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svc       *app.Services
	webDir    string
	maxUpload int64
	origins   []string
	metrics   *metrics.Manager
	gatherer  prometheus.Gatherer
}

// New creates a Server wired to the given application services.
func New(svc *app.Services, opts Options) *Server {
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &Server{
		svc:       svc,
		webDir:    opts.WebDir,
		maxUpload: maxUpload,
		origins:   opts.AllowedOrigins,
		metrics:   opts.Metrics,
		gatherer:  opts.Gatherer,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	// home
	api.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	api.HandleFunc("/water/today", s.handleWaterToday).Methods(http.MethodGet)
	api.HandleFunc("/water/today", s.handleWaterAdd).Methods(http.MethodPost)

	// calendar
	api.HandleFunc("/calendar", s.handleCalendar).Methods(http.MethodGet)
	api.HandleFunc("/diary/today", s.handleDiaryToday).Methods(http.MethodGet)
	api.HandleFunc("/diary/{date}", s.handleDiaryGet).Methods(http.MethodGet)
	api.HandleFunc("/diary/{date}", s.handleDiaryPut).Methods(http.MethodPut)

	// diet
	api.HandleFunc("/meals", s.handleMealsList).Methods(http.MethodGet)
	api.HandleFunc("/meals", s.handleMealAdd).Methods(http.MethodPost)
	api.HandleFunc("/meals/{id}", s.handleMealUpdate).Methods(http.MethodPut)
	api.HandleFunc("/meals/{id}", s.handleMealRemove).Methods(http.MethodDelete)
	api.HandleFunc("/meals/{id}/photo", s.handleMealPhotoSet).Methods(http.MethodPost)
	api.HandleFunc("/meals/{id}/photo", s.handleMealPhotoClear).Methods(http.MethodDelete)

	// workout
	api.HandleFunc("/routine", s.handleRoutineGet).Methods(http.MethodGet)
	api.HandleFunc("/routine/{day}", s.handleRoutineDayGet).Methods(http.MethodGet)
	api.HandleFunc("/routine/{day}", s.handleRoutineLabel).Methods(http.MethodPut)
	api.HandleFunc("/routine/{day}/exercises", s.handleExerciseAdd).Methods(http.MethodPost)
	api.HandleFunc("/routine/{day}/exercises/{ex}", s.handleExerciseUpdate).Methods(http.MethodPut)
	api.HandleFunc("/routine/{day}/exercises/{ex}", s.handleExerciseRemove).Methods(http.MethodDelete)
	api.HandleFunc("/routine/{day}/exercises/{ex}/sets", s.handleSetAdd).Methods(http.MethodPost)
	api.HandleFunc("/routine/{day}/exercises/{ex}/sets/{set}", s.handleSetUpdate).Methods(http.MethodPut)
	api.HandleFunc("/routine/{day}/exercises/{ex}/sets/{set}", s.handleSetRemove).Methods(http.MethodDelete)
	api.HandleFunc("/training/today", s.handleTrainingToday).Methods(http.MethodGet)
	api.HandleFunc("/training/{date}", s.handleTrainingGet).Methods(http.MethodGet)
	api.HandleFunc("/training/{date}/exercises/{ex}/sets/{set}/toggle", s.handleTrainingToggle).Methods(http.MethodPost)
	api.HandleFunc("/training/{date}/exercises/{ex}/sets/{set}", s.handleTrainingSetUpdate).Methods(http.MethodPut)

	// settings
	api.HandleFunc("/profile", s.handleProfileGet).Methods(http.MethodGet)
	api.HandleFunc("/profile", s.handleProfilePut).Methods(http.MethodPut)
	api.HandleFunc("/profile/avatar", s.handleAvatarSet).Methods(http.MethodPost)
	api.HandleFunc("/profile/avatar", s.handleAvatarClear).Methods(http.MethodDelete)
	api.HandleFunc("/targets", s.handleTargetsGet).Methods(http.MethodGet)
	api.HandleFunc("/targets", s.handleTargetsPut).Methods(http.MethodPut)

	// metrics tab
	api.HandleFunc("/metrics/today", s.handleMetricsToday).Methods(http.MethodGet)
	api.HandleFunc("/metrics/recent", s.handleMetricsRecent).Methods(http.MethodGet)
	api.HandleFunc("/metrics/{date}", s.handleMetricsGet).Methods(http.MethodGet)
	api.HandleFunc("/metrics/{date}", s.handleMetricsPut).Methods(http.MethodPut)
	api.HandleFunc("/charts/daily", s.handleChartsDaily).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
	})
	api.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
	})

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	// Not a catch-all route: a route matching any method would swallow 405s.
	r.NotFoundHandler = spaFromDisk(s.webDir)

	var h http.Handler = withNoCache(r)
	if len(s.origins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler(h)
	}
	return s.loggingMiddleware(s.requestMetrics(r, s.panicRecovery(h)))
}
