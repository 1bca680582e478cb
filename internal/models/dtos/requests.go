package dtos

import (
	"fmt"
	"time"
)

// FlightRequest is the create/update payload for a logbook entry.
// Numeric fields arrive as strings or numbers from the dashboard forms, so
// they are declared as any and coerced at the ingestion boundary.
type FlightRequest struct {
	AircraftID     *string `json:"aircraftId"`
	PilotID        *string `json:"pilotId"`
	Date           string  `json:"date"` // YYYY-MM-DD
	DepartureTime  *string `json:"departureTime"`
	TachStart      any     `json:"tachStart"`
	TachEnd        any     `json:"tachEnd"`
	HobbsTime      any     `json:"hobbsTime"`
	FuelAdded      any     `json:"fuelAdded"`
	OilAdded       any     `json:"oilAdded"`
	PassengerCount any     `json:"passengerCount"`
	Route          string  `json:"route"`
	Category       string  `json:"category"`
	Squawks        string  `json:"squawks"`
	Notes          string  `json:"notes"`
}

// Validate returns per-field validation errors, keyed by field name.
// An empty map means the request is acceptable.
func (r *FlightRequest) Validate() map[string]string {
	fieldErrs := make(map[string]string)

	if r.Date == "" {
		fieldErrs["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		fieldErrs["date"] = "date must be YYYY-MM-DD"
	}

	if r.AircraftID != nil && *r.AircraftID == "" {
		fieldErrs["aircraftId"] = "aircraftId must not be empty when set"
	}
	if r.PilotID != nil && *r.PilotID == "" {
		fieldErrs["pilotId"] = "pilotId must not be empty when set"
	}

	return fieldErrs
}

// RouteTargetRequest is the admin upsert payload for a route target time.
// Unset scoping fields act as wildcards.
type RouteTargetRequest struct {
	Route      string  `json:"route"`
	TargetTime float64 `json:"targetTime"`
	AircraftID *string `json:"aircraftId"`
	PilotID    *string `json:"pilotId"`
	Month      *int    `json:"month"`
	Year       *int    `json:"year"`
}

// Validate returns per-field validation errors for a target upsert.
func (r *RouteTargetRequest) Validate() map[string]string {
	fieldErrs := make(map[string]string)

	if r.Route == "" {
		fieldErrs["route"] = "route is required"
	}
	if r.TargetTime <= 0 {
		fieldErrs["targetTime"] = "targetTime must be a positive number of hours"
	}
	if r.Month != nil && (*r.Month < 1 || *r.Month > 12) {
		fieldErrs["month"] = fmt.Sprintf("month must be 1-12, got %d", *r.Month)
	}
	if r.Year != nil && *r.Year < 1900 {
		fieldErrs["year"] = "year is out of range"
	}

	return fieldErrs
}
