package gorm

import (
	"time"
)

// Flight is a single logbook entry. Numeric fields are normalized once at the
// ingestion boundary, so everything downstream can treat them as plain numbers.
type Flight struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	AircraftID     *string   `gorm:"column:aircraft_id;type:uuid;index" json:"aircraftId"`
	PilotID        *string   `gorm:"column:pilot_id;type:uuid;index" json:"pilotId"`
	Date           time.Time `gorm:"column:date" json:"date"`
	DepartureTime  *string   `gorm:"column:departure_time" json:"departureTime,omitempty"`
	TachStart      float64   `gorm:"column:tach_start" json:"tachStart"`
	TachEnd        float64   `gorm:"column:tach_end" json:"tachEnd"`
	HobbsTime      float64   `gorm:"column:hobbs_time" json:"hobbsTime"`
	FuelAdded      float64   `gorm:"column:fuel_added" json:"fuelAdded"`
	OilAdded       float64   `gorm:"column:oil_added" json:"oilAdded"`
	PassengerCount float64   `gorm:"column:passenger_count" json:"passengerCount"`
	Route          string    `gorm:"column:route" json:"route"`
	Category       string    `gorm:"column:category" json:"category"`
	Squawks        string    `gorm:"column:squawks" json:"squawks"`
	Notes          string    `gorm:"column:notes" json:"notes"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

// EntityID implements realtime.Entity
func (f Flight) EntityID() string { return f.ID }
