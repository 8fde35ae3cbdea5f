package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// routes that require a caller identity
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.updateProfile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
