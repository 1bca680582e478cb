package gorm

import "time"

type Pilot struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Pilot) TableName() string {
	return "pilots"
}

// EntityID implements realtime.Entity
func (p Pilot) EntityID() string { return p.ID }
