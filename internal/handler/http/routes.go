package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.With(h.optionalAuth).Get("/api/health", h.health)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/verify", h.verify)
		r.Post("/api/auth/logout", h.logout)

		r.Route("/api/employees", func(r chi.Router) {
			r.Get("/", h.listEmployees)
			r.With(h.requireRole("hr")).Post("/", h.createEmployee)

			// registered before /{id} so chi does not treat it as an identifier
			r.Get("/payroll", h.payroll)

			r.Get("/{id}", h.getEmployee)
			r.With(h.requireRole("hr")).Put("/{id}", h.updateEmployee)
			r.With(h.requireRole("hr")).Delete("/{id}", h.deleteEmployee)
		})
	})

	return router
}
