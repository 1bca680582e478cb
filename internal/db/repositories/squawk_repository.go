package repositories

import (
	"context"
	"fmt"

	"fleetops/fleetdeck/internal/constants"
	"fleetops/fleetdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// SquawkRepository serves the safety report read model via sqlx.
type SquawkRepository struct {
	db *sqlx.DB
}

func NewSquawkRepository(db *sqlx.DB) *SquawkRepository {
	return &SquawkRepository{db}
}

// ListOpen returns flights that carry a non-empty squawk, joined with tail
// number and pilot name for display.
func (r *SquawkRepository) ListOpen(ctx context.Context) ([]entities.SquawkReportRow, error) {
	var rows []entities.SquawkReportRow

	if err := r.db.SelectContext(ctx, &rows, constants.GetOpenSquawks); err != nil {
		return nil, fmt.Errorf("failed to fetch squawk report: %w", err)
	}

	return rows, nil
}
