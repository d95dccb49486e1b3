package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, middleware.Recoverer)
	s.mx.NotFound(s.NotFound)
	s.mx.MethodNotAllowed(s.MethodNotAllowed)

	s.mx.Get("/healthz", s.Health)
	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Post("/logout", s.Logout)
			r.Get("/me", s.Me)
			r.Delete("/me", s.DeleteAccount)
			r.Put("/theme", s.UpdateTheme)
			r.Get("/daily-letter", s.DailyLetter)
			r.Get("/stats", s.Stats)
			r.Get("/dashboard", s.Dashboard)

			mountResource(r, "/tasks", newResourceHandlers("task", s.tasks), true)
			mountResource(r, "/goals", newResourceHandlers("goal", s.goals), true)
			mountResource(r, "/events", newResourceHandlers("event", s.events), false)
			mountResource(r, "/reminders", newResourceHandlers("reminder", s.reminders), true)
			mountResource(r, "/gallery", newResourceHandlers("gallery item", s.gallery), false)
		})
	})
}
