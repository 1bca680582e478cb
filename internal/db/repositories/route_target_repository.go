package repositories

import (
	"context"
	"fmt"

	gormModels "fleetops/fleetdeck/internal/models/gorm"

	"gorm.io/gorm"
)

// RouteTargetRepository handles route target table operations using GORM.
// Targets are listed oldest-first so reconciliation's first-in-input-order
// tie-break stays stable across reloads.
type RouteTargetRepository struct {
	db *gorm.DB
}

// NewRouteTargetRepository creates a new GORM-based route target repository
func NewRouteTargetRepository(db *gorm.DB) *RouteTargetRepository {
	return &RouteTargetRepository{db: db}
}

// List retrieves all route targets in creation order
func (r *RouteTargetRepository) List(ctx context.Context) ([]gormModels.RouteTarget, error) {
	var targets []gormModels.RouteTarget

	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&targets).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch route targets: %w", err)
	}

	return targets, nil
}

// GetByID retrieves a route target by its ID
func (r *RouteTargetRepository) GetByID(ctx context.Context, id string) (*gormModels.RouteTarget, error) {
	var target gormModels.RouteTarget

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&target).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch route target: %w", err)
	}

	return &target, nil
}

// Create inserts a new route target
func (r *RouteTargetRepository) Create(ctx context.Context, target *gormModels.RouteTarget) error {
	if err := r.db.WithContext(ctx).Create(target).Error; err != nil {
		return fmt.Errorf("failed to create route target: %w", err)
	}
	return nil
}

// Update replaces the mutable columns of an existing route target
func (r *RouteTargetRepository) Update(ctx context.Context, target *gormModels.RouteTarget) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.RouteTarget{}).
		Where("id = ?", target.ID).
		Updates(map[string]interface{}{
			"route":       target.Route,
			"target_time": target.TargetTime,
			"aircraft_id": target.AircraftID,
			"pilot_id":    target.PilotID,
			"month":       target.Month,
			"year":        target.Year,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update route target: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a route target
func (r *RouteTargetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.RouteTarget{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete route target: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
