package gorm

import "time"

type Aircraft struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TailNumber string    `gorm:"column:tail_number;uniqueIndex" json:"tailNumber"`
	Make       string    `gorm:"column:make" json:"make"`
	Model      string    `gorm:"column:model" json:"model"`
	Category   string    `gorm:"column:category" json:"category"`
	IsActive   bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}

// EntityID implements realtime.Entity
func (a Aircraft) EntityID() string { return a.ID }

// DisplayName is the label shown for aircraft groupings
func (a Aircraft) DisplayName() string {
	if a.Make == "" && a.Model == "" {
		return a.TailNumber
	}
	return a.TailNumber + " (" + a.Make + " " + a.Model + ")"
}
