package services

import (
	"context"
	"testing"
	"time"

	"fleetops/fleetdeck/internal/constants"
	"fleetops/fleetdeck/internal/db/repositories"
	"fleetops/fleetdeck/internal/metrics"
	"fleetops/fleetdeck/internal/models/dtos"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
	"fleetops/fleetdeck/internal/realtime"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// One registry per test binary; Prometheus rejects duplicate registration.
var testMetricsReg = metrics.NewMetricsRegistry()

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&gormModels.Flight{},
		&gormModels.Aircraft{},
		&gormModels.Pilot{},
		&gormModels.RouteTarget{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func newFlightsService(db *gorm.DB) *FlightsService {
	return NewFlightsService(repositories.NewFlightRepository(db), nil, nil, nil, nil, testMetricsReg)
}

func strP(s string) *string { return &s }

func TestFlightsService_CreateFlight_CoercesNumerics(t *testing.T) {
	db := setupTestDB(t)
	service := newFlightsService(db)
	ctx := context.Background()

	req := &dtos.FlightRequest{
		AircraftID: strP("ac-x"),
		Date:       "2026-06-10",
		TachStart:  "1200.5", // form fields may arrive as strings
		TachEnd:    1202.0,
		HobbsTime:  nil,
		FuelAdded:  "12",
		Route:      "KPAO-KHAF",
		Category:   constants.CategorySF,
	}

	flight, svcErr := service.CreateFlight(ctx, req)
	if svcErr != nil {
		t.Fatalf("Expected no error, got %v", svcErr)
	}
	if flight.ID == "" {
		t.Error("Expected generated flight ID")
	}
	if flight.TachStart != 1200.5 || flight.TachEnd != 1202.0 {
		t.Errorf("Tach values = %v / %v", flight.TachStart, flight.TachEnd)
	}
	if flight.HobbsTime != 0 || flight.FuelAdded != 12 {
		t.Errorf("Coerced values = hobbs %v fuel %v", flight.HobbsTime, flight.FuelAdded)
	}

	flights, svcErr := service.ListFlights(ctx)
	if svcErr != nil {
		t.Fatalf("ListFlights: %v", svcErr)
	}
	if len(flights) != 1 {
		t.Errorf("Expected 1 flight, got %d", len(flights))
	}
}

func TestFlightsService_CreateFlight_ValidationFailure(t *testing.T) {
	db := setupTestDB(t)
	service := newFlightsService(db)

	_, svcErr := service.CreateFlight(context.Background(), &dtos.FlightRequest{Date: "not-a-date"})
	if svcErr == nil {
		t.Fatal("Expected validation error")
	}
	if svcErr.Code != constants.ErrCodeValidationFailed {
		t.Errorf("Code = %s", svcErr.Code)
	}
	if svcErr.Fields["date"] == "" {
		t.Errorf("Expected field error for date, got %v", svcErr.Fields)
	}
}

func TestFlightsService_UpdateFlight(t *testing.T) {
	db := setupTestDB(t)
	service := newFlightsService(db)
	ctx := context.Background()

	created, svcErr := service.CreateFlight(ctx, &dtos.FlightRequest{Date: "2026-06-10", Route: "A-B", HobbsTime: 1.0})
	if svcErr != nil {
		t.Fatalf("CreateFlight: %v", svcErr)
	}

	updated, svcErr := service.UpdateFlight(ctx, created.ID, &dtos.FlightRequest{Date: "2026-06-11", Route: "C-D", HobbsTime: 2.5})
	if svcErr != nil {
		t.Fatalf("UpdateFlight: %v", svcErr)
	}
	if updated.Route != "C-D" || updated.HobbsTime != 2.5 {
		t.Errorf("Updated flight = %+v", updated)
	}

	got, svcErr := service.GetFlight(ctx, created.ID)
	if svcErr != nil {
		t.Fatalf("GetFlight: %v", svcErr)
	}
	if got.Route != "C-D" {
		t.Errorf("Persisted route = %s", got.Route)
	}
}

func TestFlightsService_UpdateFlight_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newFlightsService(db)

	_, svcErr := service.UpdateFlight(context.Background(), "missing", &dtos.FlightRequest{Date: "2026-06-10"})
	if svcErr == nil || svcErr.Code != constants.ErrCodeFlightNotFound {
		t.Errorf("Expected flight not found, got %v", svcErr)
	}
}

func TestFlightsService_DeleteFlight(t *testing.T) {
	db := setupTestDB(t)
	service := newFlightsService(db)
	ctx := context.Background()

	created, svcErr := service.CreateFlight(ctx, &dtos.FlightRequest{Date: "2026-06-10"})
	if svcErr != nil {
		t.Fatalf("CreateFlight: %v", svcErr)
	}

	if svcErr := service.DeleteFlight(ctx, created.ID); svcErr != nil {
		t.Fatalf("DeleteFlight: %v", svcErr)
	}

	if svcErr := service.DeleteFlight(ctx, created.ID); svcErr == nil || svcErr.Code != constants.ErrCodeFlightNotFound {
		t.Errorf("Expected flight not found on second delete, got %v", svcErr)
	}

	_, svcErr = service.GetFlight(ctx, created.ID)
	if svcErr == nil || svcErr.Code != constants.ErrCodeFlightNotFound {
		t.Errorf("Expected flight not found after delete, got %v", svcErr)
	}
}

func TestFlightsService_ListPrefersReadyProjection(t *testing.T) {
	db := setupTestDB(t)

	proj := realtime.NewProjection[gormModels.Flight]("flights", 8)
	err := proj.Bootstrap(context.Background(), func(context.Context) ([]gormModels.Flight, error) {
		return []gormModels.Flight{
			{ID: "p1", Route: "A-B", Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		}, nil
	})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	service := NewFlightsService(repositories.NewFlightRepository(db), nil, proj, nil, nil, testMetricsReg)

	// the database is empty; the snapshot must be served instead
	flights, svcErr := service.ListFlights(context.Background())
	if svcErr != nil {
		t.Fatalf("ListFlights: %v", svcErr)
	}
	if len(flights) != 1 || flights[0].ID != "p1" {
		t.Errorf("Expected projection snapshot, got %+v", flights)
	}
}
