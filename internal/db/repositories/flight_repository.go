package repositories

import (
	"context"
	"fmt"

	gormModels "fleetops/fleetdeck/internal/models/gorm"

	"gorm.io/gorm"
)

// FlightRepository handles flight table operations using GORM
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new GORM-based flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// List retrieves all flights, newest first
func (r *FlightRepository) List(ctx context.Context) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight

	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch flights: %w", err)
	}

	return flights, nil
}

// GetByID retrieves a flight by its ID
func (r *FlightRepository) GetByID(ctx context.Context, id string) (*gormModels.Flight, error) {
	var flight gormModels.Flight

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&flight).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

// Create inserts a new flight record
func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.Flight) error {
	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}
	return nil
}

// Update replaces the mutable columns of an existing flight
func (r *FlightRepository) Update(ctx context.Context, flight *gormModels.Flight) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("id = ?", flight.ID).
		Updates(map[string]interface{}{
			"aircraft_id":     flight.AircraftID,
			"pilot_id":        flight.PilotID,
			"date":            flight.Date,
			"departure_time":  flight.DepartureTime,
			"tach_start":      flight.TachStart,
			"tach_end":        flight.TachEnd,
			"hobbs_time":      flight.HobbsTime,
			"fuel_added":      flight.FuelAdded,
			"oil_added":       flight.OilAdded,
			"passenger_count": flight.PassengerCount,
			"route":           flight.Route,
			"category":        flight.Category,
			"squawks":         flight.Squawks,
			"notes":           flight.Notes,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update flight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a flight record
func (r *FlightRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Flight{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete flight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
