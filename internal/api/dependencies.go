package api

import (
	"os"

	"fleetops/fleetdeck/internal/common"
	"fleetops/fleetdeck/internal/db"
	"fleetops/fleetdeck/internal/db/repositories"
	"fleetops/fleetdeck/internal/metrics"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
	"fleetops/fleetdeck/internal/realtime"
	"fleetops/fleetdeck/internal/services"

	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Flights  *repositories.FlightRepository
	Aircraft *repositories.AircraftRepository
	Pilots   *repositories.PilotRepository
	Targets  *repositories.RouteTargetRepository
	Squawks  *repositories.SquawkRepository
	Keys     *repositories.KeysRepo
}

type Projections struct {
	Flights  *realtime.Projection[gormModels.Flight]
	Aircraft *realtime.Projection[gormModels.Aircraft]
}

type Services struct {
	Flights   *services.FlightsService
	Analytics *services.AnalyticsService
	Targets   *services.TargetService
	Bootstrap *services.Bootstrapper
	Cache     common.CacheInterface
}

type Dependencies struct {
	Repo     *Repositories
	Proj     *Projections
	Services *Services
	Redis    *redis.Client
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Flights:  repositories.NewFlightRepository(db.PgDB),
		Aircraft: repositories.NewAircraftRepository(db.PgDB),
		Pilots:   repositories.NewPilotRepository(db.PgDB),
		Targets:  repositories.NewRouteTargetRepository(db.PgDB),
		Squawks:  repositories.NewSquawkRepository(db.DB),
		Keys:     repositories.NewApiKeysRepo(db.DB),
	}

	redisClient := common.NewRedisClient()

	var cacheSvc common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		cacheSvc = common.NewRedisCacheService(redisClient)
	} else {
		cacheSvc = common.NewCacheService(60, 600)
	}

	flightProj := realtime.NewProjection[gormModels.Flight]("flights", 256)
	flightProj.OnApply(func(action realtime.Action, size int) {
		metricsReg.RealtimeEventsApplied.WithLabelValues("flights", string(action)).Inc()
		metricsReg.ProjectionSize.WithLabelValues("flights").Set(float64(size))
	})

	aircraftProj := realtime.NewProjection[gormModels.Aircraft]("aircraft", 64)
	aircraftProj.OnApply(func(action realtime.Action, size int) {
		metricsReg.RealtimeEventsApplied.WithLabelValues("aircraft", string(action)).Inc()
		metricsReg.ProjectionSize.WithLabelValues("aircraft").Set(float64(size))
	})

	publisher := realtime.NewPublisher(redisClient)

	analyticsSvc := services.NewAnalyticsService(flightProj, aircraftProj, repos.Flights, repos.Aircraft, repos.Pilots, repos.Targets, cacheSvc, metricsReg)

	svcs := &Services{
		Flights:   services.NewFlightsService(repos.Flights, repos.Squawks, flightProj, publisher, analyticsSvc, metricsReg),
		Analytics: analyticsSvc,
		Targets:   services.NewTargetService(repos.Targets),
		Bootstrap: services.NewBootstrapper(repos.Flights, repos.Aircraft, flightProj, aircraftProj),
		Cache:     cacheSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Proj:     &Projections{Flights: flightProj, Aircraft: aircraftProj},
		Services: svcs,
		Redis:    redisClient,
		Metrics:  metricsReg,
	}, nil
}
