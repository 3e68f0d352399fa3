package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route is GET only; chi answers other
// methods with 405.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Route("/config", func(r chi.Router) {
			r.Get("/", h.getConfiguration)
			r.Get("/{key}", h.getConfigurationValue)
		})
		r.Get("/report", h.getReport)
		r.Get("/version", h.getServerVersion)
	})

	return router
}
