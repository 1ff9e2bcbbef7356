package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/session", h.openSession)
		r.Get("/api/version", h.getServerVersion)
	})

	// authorized screen API
	router.Group(func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Post("/api/screens/push", h.pushScreen)
		r.Get("/api/screens", h.listScreens)
		r.Get("/api/screens/search", h.searchScreens)
		r.Get("/api/screens/count", h.countScreens)
		r.Get("/api/screens/{screenID}", h.getScreen)
		r.Delete("/api/screens/{screenID}", h.deleteScreen)
	})

	// The watch endpoint upgrades the connection and writes frames to the
	// hijacked socket, so it must stay outside the gzip wrapper.
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/screens/watch", h.watchScreens)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
