package constants

import (
	"database/sql/driver"
	"fmt"
)

// FleetRole mirrors the Postgres ENUM 'fleet_role'
type FleetRole string

const (
	RolePilot      FleetRole = "pilot"
	RoleDispatcher FleetRole = "dispatcher"
	RoleAdmin      FleetRole = "admin"
)

// Stringer ­– convenient for fmt / logs
func (r FleetRole) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *FleetRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = FleetRole(v)
	case []byte:
		*r = FleetRole(v)
	default:
		return fmt.Errorf("FleetRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r FleetRole) Value() (driver.Value, error) { return string(r), nil }
