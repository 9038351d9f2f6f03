package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withTimeout, withGZip)

	// lookup form
	router.Group(func(r chi.Router) {
		r.Get("/", h.showForm)
		r.Post("/check", h.submitForm)
	})

	// JSON API
	router.Group(func(r chi.Router) {
		r.Get("/api/banks", h.listBanks)
		r.Post("/api/lookup", h.lookup)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
