// Package http is the dashboard's inbound HTTP adapter: the chi route table
// and the server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
)

// Handlers groups the endpoint handlers the router mounts.
type Handlers struct {
	Discovery  *handlers.DiscoveryHandler
	Completion *handlers.CompletionHandler
	Settings   *handlers.SettingsHandler
	Health     *handlers.HealthHandler
}

// NewRouter mounts every route on a chi mux wrapped in middlewares, the
// first of which is outermost. Unknown routes and methods answer with
// problem documents like any other error.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, dto.ErrorResponse{
			Type:     "about:blank",
			Title:    http.StatusText(http.StatusMethodNotAllowed),
			Status:   http.StatusMethodNotAllowed,
			Detail:   fmt.Sprintf("%s not allowed on %s", req.Method, req.URL.Path),
			Instance: req.URL.RequestURI(),
		})
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Discovery.ListProjects)
			r.Get("/summary", h.Discovery.Summary)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/completion", h.Discovery.GetCompletion)
				r.Get("/status", h.Discovery.GetStatus)
				r.Get("/questions", h.Discovery.ListQuestions)
				r.Post("/questions/generate", h.Discovery.GenerateQuestions)
				r.Post("/transcripts", h.Discovery.ProcessTranscript)
				r.Get("/report", h.Discovery.GetReport)
			})
		})

		r.Post("/completion", h.Completion.Evaluate)
		r.Get("/completion/policy", h.Completion.Policy)

		r.Get("/settings", h.Settings.GetSettings)
		r.Patch("/settings", h.Settings.UpdateSettings)
	})

	return r
}
