package services

import (
	"context"

	"fleetops/fleetdeck/internal/db/repositories"
	"fleetops/fleetdeck/internal/logging"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
	"fleetops/fleetdeck/internal/realtime"

	"golang.org/x/sync/errgroup"
)

// Bootstrapper seeds the realtime projections with their initial bulk fetch.
// The datasets load in parallel and fail independently: a flights fetch
// error leaves the aircraft projection ready, and vice versa. The dashboard
// retry button re-invokes the same fetch through Run.
type Bootstrapper struct {
	flightRepo   *repositories.FlightRepository
	aircraftRepo *repositories.AircraftRepository
	flightProj   *realtime.Projection[gormModels.Flight]
	aircraftProj *realtime.Projection[gormModels.Aircraft]
}

func NewBootstrapper(
	flightRepo *repositories.FlightRepository,
	aircraftRepo *repositories.AircraftRepository,
	flightProj *realtime.Projection[gormModels.Flight],
	aircraftProj *realtime.Projection[gormModels.Aircraft],
) *Bootstrapper {
	return &Bootstrapper{
		flightRepo:   flightRepo,
		aircraftRepo: aircraftRepo,
		flightProj:   flightProj,
		aircraftProj: aircraftProj,
	}
}

// Run loads both projections. Already-ready projections are refreshed.
// Returns the first error for the caller's banner; both loads always run to
// completion regardless of the other's outcome.
func (b *Bootstrapper) Run(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		if err := b.flightProj.Bootstrap(ctx, b.flightRepo.List); err != nil {
			logging.Error("Flight projection bootstrap failed", "error", err.Error())
			return err
		}
		logging.Info("Flight projection ready", "count", b.flightProj.Len())
		return nil
	})

	g.Go(func() error {
		if err := b.aircraftProj.Bootstrap(ctx, b.aircraftRepo.List); err != nil {
			logging.Error("Aircraft projection bootstrap failed", "error", err.Error())
			return err
		}
		logging.Info("Aircraft projection ready", "count", b.aircraftProj.Len())
		return nil
	})

	return g.Wait()
}
