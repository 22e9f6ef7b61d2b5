// Package httpapi is the Build Orchestrator's HTTP surface: request
// acceptors for /build and its thin status/log/context wrappers.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"chassisml.io/coreservice/internal/buildserver/manager"
)

const requiredUserAgent = "ChassisClient/1.5"
const rejectedUserAgentBody = "This remote build server requires Chassis v1.5+."
const serviceVersion = "1.5.0"

const (
	maxConfigSize  = 1 << 20         // 1 MiB
	maxContextSize = 20 << 30        // 20 GiB
)

// NewRouter assembles the Build Orchestrator's HTTP surface.
func NewRouter(state *manager.ServiceState) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(state.Log))

	h := &handlers{state: state}

	r.Get("/", h.alive)
	r.Get("/health", h.health)
	r.Get("/healthz", h.healthz)
	r.Get("/version", h.version)
	r.Post("/test", h.gone)
	r.Post("/build", h.build)
	r.Get("/contexts/{buildID}/context.zip", h.context)
	r.Get("/job/{buildID}", h.jobStatus)
	r.Get("/job/{buildID}/logs", h.jobLogs)
	r.Get("/job/{buildID}/download-tar", h.gone)

	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

type handlers struct {
	state *manager.ServiceState
}

func (h *handlers) alive(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Alive!")
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Chassis Server Up and Running!")
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *handlers) version(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, serviceVersion)
}

func (h *handlers) gone(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusGone)
}

func (h *handlers) context(w http.ResponseWriter, r *http.Request) {
	buildID := chi.URLParam(r, "buildID")
	h.state.Cache.Serve(w, r, buildID)
}

func (h *handlers) jobStatus(w http.ResponseWriter, r *http.Request) {
	buildID := chi.URLParam(r, "buildID")
	m := manager.ForJob(h.state, buildID)

	job, err := m.GetJob(r.Context())
	if err != nil {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, m.GetBuildStatusResponse(r.Context(), job))
}

func (h *handlers) jobLogs(w http.ResponseWriter, r *http.Request) {
	buildID := chi.URLParam(r, "buildID")
	m := manager.ForJob(h.state, buildID)

	logs, err := m.GetJobLogs(r.Context())
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if logs == "" {
		http.NotFound(w, r)
		return
	}
	writeText(w, http.StatusOK, logs)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
