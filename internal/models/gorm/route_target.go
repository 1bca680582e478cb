package gorm

import "time"

// RouteTarget is an administrator-configured expected duration for a route.
// A nil scoping field is a wildcard: the target applies to any value of that
// dimension.
type RouteTarget struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Route      string    `gorm:"column:route;index" json:"route"`
	TargetTime float64   `gorm:"column:target_time" json:"targetTime"`
	AircraftID *string   `gorm:"column:aircraft_id;type:uuid" json:"aircraftId"`
	PilotID    *string   `gorm:"column:pilot_id;type:uuid" json:"pilotId"`
	Month      *int      `gorm:"column:month" json:"month"`
	Year       *int      `gorm:"column:year" json:"year"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (RouteTarget) TableName() string {
	return "route_targets"
}

// EntityID implements realtime.Entity
func (t RouteTarget) EntityID() string { return t.ID }
