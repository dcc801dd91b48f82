package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/luach-api/internal/config"
)

// NewRouter configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/today
//	GET    /api/v1/convert/gregorian/{date}
//	GET    /api/v1/convert/hebrew/{year}/{month}/{day}
//	GET    /api/v1/convert/absolute/{day}
//	GET    /api/v1/convert/range?start=&end=
//	GET    /api/v1/years/{year}
//	GET    /api/v1/years/{year}/months/{month}
//	POST   /api/v1/admin/years/seed        (X-API-Key)
//	GET    /api/v1/admin/years/stats       (X-API-Key)
//	DELETE /api/v1/admin/years/{year}      (X-API-Key)
func NewRouter(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// ======================================================================
		// Public routes
		// ======================================================================
		r.Get("/today", handlers.GetToday)

		r.Route("/convert", func(r chi.Router) {
			r.Get("/gregorian/{date}", handlers.ConvertGregorian)
			r.Get("/hebrew/{year}/{month}/{day}", handlers.ConvertHebrew)
			r.Get("/absolute/{day}", handlers.ConvertAbsolute)
			r.Get("/range", handlers.ConvertRange)
		})

		r.Get("/years/{year}", handlers.GetYear)
		r.Get("/years/{year}/months/{month}", handlers.GetMonth)

		// ======================================================================
		// Admin routes
		// ======================================================================
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))

			r.Post("/years/seed", handlers.SeedYears)
			r.Get("/years/stats", handlers.GetYearStats)
			r.Delete("/years/{year}", handlers.DeleteYear)
		})
	})

	return r
}
