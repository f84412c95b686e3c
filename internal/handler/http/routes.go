package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/reset-password", h.resetPassword)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/session", h.currentSession)

		r.Put("/api/profile", h.updateProfile)
		r.Post("/api/profile/password", h.changePassword)

		r.Post("/api/analysis", h.analyze)
		r.Get("/api/registry", h.fetchRegistry)

		r.Get("/api/state", h.getState)
		r.Post("/api/state/reset", h.resetState)

		r.Get("/api/history", h.getHistory)
		r.Delete("/api/history", h.clearHistory)
		r.Post("/api/history/{id}/select", h.selectHistory)

		r.Get("/api/preferences", h.getPreferences)
		r.Get("/api/preferences/theme", h.getTheme)
		r.Put("/api/preferences/theme", h.setTheme)
		r.Post("/api/preferences/theme/toggle", h.toggleTheme)
		r.Put("/api/preferences/api-key", h.setAPIKey)

		r.Get("/api/version", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
