package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"airfield-ops/towerlog/internal/api"
	"airfield-ops/towerlog/internal/config"
	"airfield-ops/towerlog/internal/db"
	"airfield-ops/towerlog/internal/logging"
	"airfield-ops/towerlog/internal/metrics"
	"airfield-ops/towerlog/internal/middleware"
)

// RegisterRoutes builds the chi router with global middleware, the health
// check, and all API v1 routes.
func RegisterRoutes(cfg *config.Config, upSince time.Time) (http.Handler, error) {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(cfg)
	if err != nil {
		return nil, err
	}

	RegisterAPIRoutes(r, metricsReg, deps)

	logging.Info("Router initialized with metrics and logging middleware")
	return r, nil
}
