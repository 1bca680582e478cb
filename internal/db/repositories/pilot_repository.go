package repositories

import (
	"context"
	"fmt"

	gormModels "fleetops/fleetdeck/internal/models/gorm"

	"gorm.io/gorm"
)

// PilotRepository handles pilot table operations using GORM
type PilotRepository struct {
	db *gorm.DB
}

// NewPilotRepository creates a new GORM-based pilot repository
func NewPilotRepository(db *gorm.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

// List retrieves all active pilots
func (r *PilotRepository) List(ctx context.Context) ([]gormModels.Pilot, error) {
	var pilots []gormModels.Pilot

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&pilots).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch pilots: %w", err)
	}

	return pilots, nil
}
