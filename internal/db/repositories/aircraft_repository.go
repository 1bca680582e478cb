package repositories

import (
	"context"
	"fmt"

	gormModels "fleetops/fleetdeck/internal/models/gorm"

	"gorm.io/gorm"
)

// AircraftRepository handles aircraft table operations using GORM
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new GORM-based aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// List retrieves all active aircraft
func (r *AircraftRepository) List(ctx context.Context) ([]gormModels.Aircraft, error) {
	var aircraft []gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("tail_number ASC").
		Find(&aircraft).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return aircraft, nil
}

// GetByID retrieves an aircraft by its ID
func (r *AircraftRepository) GetByID(ctx context.Context, id string) (*gormModels.Aircraft, error) {
	var ac gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ac).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &ac, nil
}
