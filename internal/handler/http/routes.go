package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. requestTimeout bounds every request; zero
// disables the limit.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/forms/{id}", h.getForm)
		r.Get("/forms/page/{page}", h.getFormByPage)
		r.With(h.optionalAuth).Post("/forms/{id}/submit", h.submitForm)
	})

	// administrator routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/forms", h.createForm)
		r.Get("/forms", h.listForms)
		r.Put("/forms/{id}", h.updateForm)
		r.Delete("/forms/{id}", h.deleteForm)
		r.Get("/forms/{id}/submissions", h.listSubmissions)

		r.Get("/submissions/{id}", h.getSubmission)
		r.Delete("/submissions/{id}", h.deleteSubmission)

		r.Post("/email-templates", h.createEmailTemplate)
		r.Get("/email-templates", h.listEmailTemplates)
		r.Get("/email-templates/{id}", h.getEmailTemplate)
		r.Delete("/email-templates/{id}", h.deleteEmailTemplate)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
