package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/token", h.issueToken)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Get("/api/whitelist", h.listNames)
		r.Post("/api/whitelist", h.addName)
		r.Delete("/api/whitelist/{name}", h.removeName)
		r.Get("/api/whitelist/remote", h.listRemoteNames)
		r.Get("/api/whitelist/export", h.exportNames)
		r.Post("/api/whitelist/import", h.importNames)

		r.Get("/api/sync/diff", h.previewDiff)
		r.Post("/api/sync", h.runSync)
		r.Get("/api/status", h.getStatus)
		r.Get("/api/audit", h.getAudit)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
