package services

import (
	"context"
	"errors"
	"time"

	"fleetops/fleetdeck/internal/analytics"
	"fleetops/fleetdeck/internal/constants"
	"fleetops/fleetdeck/internal/db/repositories"
	"fleetops/fleetdeck/internal/logging"
	"fleetops/fleetdeck/internal/metrics"
	"fleetops/fleetdeck/internal/models/dtos"
	"fleetops/fleetdeck/internal/models/entities"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
	"fleetops/fleetdeck/internal/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlightsService orchestrates logbook CRUD. Reads prefer the realtime
// projection when it is ready; writes go to the repository and are then
// broadcast on the row-change feed.
type FlightsService struct {
	flightRepo *repositories.FlightRepository
	squawkRepo *repositories.SquawkRepository
	flightProj *realtime.Projection[gormModels.Flight]
	publisher  *realtime.Publisher
	stats      *AnalyticsService
	metricsReg *metrics.MetricsRegistry
}

func NewFlightsService(
	flightRepo *repositories.FlightRepository,
	squawkRepo *repositories.SquawkRepository,
	flightProj *realtime.Projection[gormModels.Flight],
	publisher *realtime.Publisher,
	stats *AnalyticsService,
	metricsReg *metrics.MetricsRegistry,
) *FlightsService {
	return &FlightsService{
		flightRepo: flightRepo,
		squawkRepo: squawkRepo,
		flightProj: flightProj,
		publisher:  publisher,
		stats:      stats,
		metricsReg: metricsReg,
	}
}

// ListFlights returns the current flight collection. The projection snapshot
// is authoritative once ready; before that, reads fall through to the
// repository so a slow bootstrap never blanks the logbook view.
func (s *FlightsService) ListFlights(ctx context.Context) ([]gormModels.Flight, *ServiceError) {
	if s.flightProj != nil && s.flightProj.State() == realtime.StateReady {
		return s.flightProj.Snapshot(), nil
	}

	flights, err := s.flightRepo.List(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeFetchFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeFetchFailed),
			Err:     err,
		}
	}
	return flights, nil
}

// GetFlight fetches a single logbook entry.
func (s *FlightsService) GetFlight(ctx context.Context, id string) (*gormModels.Flight, *ServiceError) {
	flight, err := s.flightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeFetchFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeFetchFailed),
			Err:     err,
		}
	}
	if flight == nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeFlightNotFound,
			Message: constants.GetErrorMessage(constants.ErrCodeFlightNotFound),
		}
	}
	return flight, nil
}

// flightFromRequest is the single ingestion boundary: loose form numerics
// are coerced here once, so everything downstream sees well-typed values.
func flightFromRequest(id string, req *dtos.FlightRequest) gormModels.Flight {
	date, _ := time.Parse("2006-01-02", req.Date)
	return gormModels.Flight{
		ID:             id,
		AircraftID:     req.AircraftID,
		PilotID:        req.PilotID,
		Date:           date,
		DepartureTime:  req.DepartureTime,
		TachStart:      analytics.Num(req.TachStart),
		TachEnd:        analytics.Num(req.TachEnd),
		HobbsTime:      analytics.Num(req.HobbsTime),
		FuelAdded:      analytics.Num(req.FuelAdded),
		OilAdded:       analytics.Num(req.OilAdded),
		PassengerCount: analytics.Num(req.PassengerCount),
		Route:          req.Route,
		Category:       req.Category,
		Squawks:        req.Squawks,
		Notes:          req.Notes,
	}
}

// CreateFlight validates and persists a new logbook entry.
func (s *FlightsService) CreateFlight(ctx context.Context, req *dtos.FlightRequest) (*gormModels.Flight, *ServiceError) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, &ServiceError{
			Code:    constants.ErrCodeValidationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeValidationFailed),
			Fields:  fieldErrs,
		}
	}

	flight := flightFromRequest(uuid.NewString(), req)
	if err := s.flightRepo.Create(ctx, &flight); err != nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeMutationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeMutationFailed),
			Err:     err,
		}
	}

	s.metricsReg.FlightsProcessedTotal.Inc()
	s.invalidateStats()
	s.broadcast(ctx, realtime.ActionInsert, flight)
	return &flight, nil
}

// UpdateFlight validates and replaces an existing logbook entry.
func (s *FlightsService) UpdateFlight(ctx context.Context, id string, req *dtos.FlightRequest) (*gormModels.Flight, *ServiceError) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, &ServiceError{
			Code:    constants.ErrCodeValidationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeValidationFailed),
			Fields:  fieldErrs,
		}
	}

	flight := flightFromRequest(id, req)
	if err := s.flightRepo.Update(ctx, &flight); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{
				Code:    constants.ErrCodeFlightNotFound,
				Message: constants.GetErrorMessage(constants.ErrCodeFlightNotFound),
			}
		}
		return nil, &ServiceError{
			Code:    constants.ErrCodeMutationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeMutationFailed),
			Err:     err,
		}
	}

	s.invalidateStats()
	s.broadcast(ctx, realtime.ActionUpdate, flight)
	return &flight, nil
}

// DeleteFlight removes a logbook entry.
func (s *FlightsService) DeleteFlight(ctx context.Context, id string) *ServiceError {
	if err := s.flightRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{
				Code:    constants.ErrCodeFlightNotFound,
				Message: constants.GetErrorMessage(constants.ErrCodeFlightNotFound),
			}
		}
		return &ServiceError{
			Code:    constants.ErrCodeMutationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeMutationFailed),
			Err:     err,
		}
	}

	s.invalidateStats()
	s.broadcast(ctx, realtime.ActionDelete, gormModels.Flight{ID: id})
	return nil
}

// GetSquawkReport lists flights carrying open squawks for the safety view.
func (s *FlightsService) GetSquawkReport(ctx context.Context) ([]entities.SquawkReportRow, *ServiceError) {
	rows, err := s.squawkRepo.ListOpen(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeFetchFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeFetchFailed),
			Err:     err,
		}
	}
	return rows, nil
}

// invalidateStats retires cached analytics responses after a successful
// write, so the writer's next aggregate read reflects its own mutation.
func (s *FlightsService) invalidateStats() {
	if s.stats != nil {
		s.stats.InvalidateStats()
	}
}

// broadcast is best-effort: a publish failure never rolls back the write,
// subscribers converge on the next bootstrap.
func (s *FlightsService) broadcast(ctx context.Context, action realtime.Action, flight gormModels.Flight) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishFlightChange(ctx, action, flight); err != nil {
		logging.Warn("Failed to broadcast flight change",
			"action", string(action),
			"flight_id", flight.ID,
			"error", err.Error(),
		)
	}
}
