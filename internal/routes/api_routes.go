package routes

import (
	"fleetops/fleetdeck/internal/api"
	"fleetops/fleetdeck/internal/metrics"
	"fleetops/fleetdeck/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	flightSvc := deps.Services.Flights
	statsSvc := deps.Services.Analytics
	targetSvc := deps.Services.Targets

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.AuthMiddleware(deps.Repo.Keys)) // global: all routes must be authenticated

		// Logbook
		v1.Get("/flights", api.ListFlightsHandler(flightSvc))
		v1.Post("/flights", api.CreateFlightHandler(flightSvc))
		v1.Get("/flights/{flight_id}", api.GetFlightHandler(flightSvc))
		v1.Put("/flights/{flight_id}", api.UpdateFlightHandler(flightSvc))
		v1.Delete("/flights/{flight_id}", api.DeleteFlightHandler(flightSvc))

		// Fleet reference data
		v1.Get("/aircraft", api.ListAircraftHandler(deps.Repo.Aircraft))
		v1.Get("/pilots", api.ListPilotsHandler(deps.Repo.Pilots))

		// Analytics views
		v1.Get("/analytics/aircraft", api.AircraftStatsHandler(statsSvc))
		v1.Get("/analytics/pilots", api.PilotStatsHandler(statsSvc))
		v1.Get("/analytics/routes", api.RouteStatsHandler(statsSvc))
		v1.Get("/analytics/trend", api.TrendHandler(statsSvc))

		// Safety reporting
		v1.Get("/squawks", api.SquawkReportHandler(flightSvc))

		// Manual retry for a failed initial fetch
		v1.Post("/refresh", api.RefreshHandler(deps.Services.Bootstrap))

		// Admin-only: route target management
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.IsAdminMiddleware())

			admin.Get("/targets", api.ListTargetsHandler(targetSvc))
			admin.Post("/targets", api.CreateTargetHandler(targetSvc))
			admin.Put("/targets/{target_id}", api.UpdateTargetHandler(targetSvc))
			admin.Delete("/targets/{target_id}", api.DeleteTargetHandler(targetSvc))
		})
	})
}
