package routes

import (
	"context"
	"net/http"
	"time"

	"fleetops/fleetdeck/internal/api"
	"fleetops/fleetdeck/internal/db"
	"fleetops/fleetdeck/internal/logging"
	"fleetops/fleetdeck/internal/metrics"
	"fleetops/fleetdeck/internal/middleware"
	"fleetops/fleetdeck/internal/realtime"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with rate limiting and CORS")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Seed and start the realtime projections, then attach the row-change
	// feed. A failed initial fetch is non-fatal: reads fall back to the
	// repositories and the dashboard retry re-runs the bootstrap.
	deps.Proj.Flights.Start()
	deps.Proj.Aircraft.Start()

	ctx := context.Background()
	if err := deps.Services.Bootstrap.Run(ctx); err != nil {
		logging.Warn("Initial projection bootstrap incomplete", "error", err.Error())
	}

	realtime.Watch(ctx, deps.Redis, realtime.ChannelFlights, realtime.DecodeFlightEvent, deps.Proj.Flights)
	realtime.Watch(ctx, deps.Redis, realtime.ChannelAircraft, realtime.DecodeAircraftEvent, deps.Proj.Aircraft)

	// Register API routes
	RegisterAPIRoutes(r, metricsReg, deps)

	return r
}
