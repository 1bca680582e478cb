package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"fleetops/fleetdeck/internal/analytics"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
)

// ChangeEnvelope is the transport payload for one row change. Row field
// names use the backend's flattened snake_case shape.
type ChangeEnvelope struct {
	Action string          `json:"action"`
	Row    json.RawMessage `json:"row"`
}

// FlightRow is the wire shape of a flight record. Numeric columns may arrive
// as numbers, strings or null; they are coerced exactly once here so the
// aggregation core only ever sees well-typed values.
type FlightRow struct {
	ID             string  `json:"id"`
	AircraftID     *string `json:"aircraft_id"`
	PilotID        *string `json:"pilot_id"`
	Date           string  `json:"date"`
	DepartureTime  *string `json:"departure_time"`
	TachStart      any     `json:"tach_start"`
	TachEnd        any     `json:"tach_end"`
	HobbsTime      any     `json:"hobbs_time"`
	FuelAdded      any     `json:"fuel_added"`
	OilAdded       any     `json:"oil_added"`
	PassengerCount any     `json:"passenger_count"`
	Route          string  `json:"route"`
	Category       string  `json:"category"`
	Squawks        string  `json:"squawks"`
	Notes          string  `json:"notes"`
}

func parseWireDate(raw string) time.Time {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}

// ToDomain maps the wire row to the strict camelCase domain shape.
func (r FlightRow) ToDomain() gormModels.Flight {
	return gormModels.Flight{
		ID:             r.ID,
		AircraftID:     r.AircraftID,
		PilotID:        r.PilotID,
		Date:           parseWireDate(r.Date),
		DepartureTime:  r.DepartureTime,
		TachStart:      analytics.Num(r.TachStart),
		TachEnd:        analytics.Num(r.TachEnd),
		HobbsTime:      analytics.Num(r.HobbsTime),
		FuelAdded:      analytics.Num(r.FuelAdded),
		OilAdded:       analytics.Num(r.OilAdded),
		PassengerCount: analytics.Num(r.PassengerCount),
		Route:          r.Route,
		Category:       r.Category,
		Squawks:        r.Squawks,
		Notes:          r.Notes,
	}
}

// AircraftRow is the wire shape of an aircraft record.
type AircraftRow struct {
	ID         string `json:"id"`
	TailNumber string `json:"tail_number"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Category   string `json:"category"`
	IsActive   *bool  `json:"is_active"`
}

// ToDomain maps the wire row to the domain shape.
func (r AircraftRow) ToDomain() gormModels.Aircraft {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return gormModels.Aircraft{
		ID:         r.ID,
		TailNumber: r.TailNumber,
		Make:       r.Make,
		Model:      r.Model,
		Category:   r.Category,
		IsActive:   active,
	}
}

// DecodeFlightEvent decodes a transport payload into a flight change event.
func DecodeFlightEvent(payload []byte) (Event[gormModels.Flight], error) {
	var env ChangeEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Event[gormModels.Flight]{}, fmt.Errorf("decode flight envelope: %w", err)
	}
	var row FlightRow
	if err := json.Unmarshal(env.Row, &row); err != nil {
		return Event[gormModels.Flight]{}, fmt.Errorf("decode flight row: %w", err)
	}
	return Event[gormModels.Flight]{Action: Action(env.Action), Record: row.ToDomain()}, nil
}

// DecodeAircraftEvent decodes a transport payload into an aircraft change event.
func DecodeAircraftEvent(payload []byte) (Event[gormModels.Aircraft], error) {
	var env ChangeEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Event[gormModels.Aircraft]{}, fmt.Errorf("decode aircraft envelope: %w", err)
	}
	var row AircraftRow
	if err := json.Unmarshal(env.Row, &row); err != nil {
		return Event[gormModels.Aircraft]{}, fmt.Errorf("decode aircraft row: %w", err)
	}
	return Event[gormModels.Aircraft]{Action: Action(env.Action), Record: row.ToDomain()}, nil
}
