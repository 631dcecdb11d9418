package adapthttp

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

func recorderFor(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// loggingMiddleware logs method, path, status and duration of each request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := recorderFor(w)
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Infof("%s %s %d", r.Method, r.URL.Path, rec.status)
	})
}

// requestMetrics counts requests and observes their duration per route.
// It wraps the whole handler so 404s, 405s and panics are counted too; those
// carry the "unmatched" route label.
func (s *Server) requestMetrics(router *mux.Router, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		begin := time.Now()
		s.metrics.GaugeRequests.Inc()
		defer s.metrics.GaugeRequests.Dec()

		rec := recorderFor(w)
		next.ServeHTTP(rec, r)

		route := routeLabel(router, r)
		status := strconv.Itoa(rec.status)
		s.metrics.HistogramRequestDuration.With(prometheus.Labels{
			"route":       route,
			"method":      r.Method,
			"status_code": status,
		}).Observe(time.Since(begin).Seconds())
		s.metrics.CounterRequests.With(prometheus.Labels{
			"method": r.Method,
			"status": status,
		}).Inc()
	})
}

// routeLabel returns the path template of the route serving r. Method
// mismatches resolve to the handler-less /api prefix route, so only routes
// with their own handler count as matched.
func routeLabel(router *mux.Router, r *http.Request) string {
	var match mux.RouteMatch
	if !router.Match(r, &match) || match.MatchErr != nil || match.Route == nil || match.Route.GetHandler() == nil {
		return "unmatched"
	}
	tpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tpl
}

// panicRecovery turns a handler panic into a 500 and counts it.
func (s *Server) panicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorderFor(w)
		defer func() {
			if p := recover(); p != nil {
				log.Errorf("http: panic serving %s: %v\n%s", r.URL.Path, p, debug.Stack())
				if s.metrics != nil {
					s.metrics.CounterHandleRequestPanic.Inc()
				}
				if !rec.wroteHeader {
					http.Error(rec, "internal error", http.StatusInternalServerError)
				}
			}
		}()
		next.ServeHTTP(rec, r)
	})
}
