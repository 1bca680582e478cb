package services

import (
	"context"
	"errors"

	"fleetops/fleetdeck/internal/constants"
	"fleetops/fleetdeck/internal/db/repositories"
	"fleetops/fleetdeck/internal/models/dtos"
	gormModels "fleetops/fleetdeck/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TargetService manages route target times. All writes sit behind the admin
// middleware; the aggregation layer only ever reads.
type TargetService struct {
	targetRepo *repositories.RouteTargetRepository
}

func NewTargetService(targetRepo *repositories.RouteTargetRepository) *TargetService {
	return &TargetService{targetRepo: targetRepo}
}

// ListTargets returns all configured targets in creation order.
func (s *TargetService) ListTargets(ctx context.Context) ([]gormModels.RouteTarget, *ServiceError) {
	targets, err := s.targetRepo.List(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeFetchFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeFetchFailed),
			Err:     err,
		}
	}
	return targets, nil
}

func targetFromRequest(id string, req *dtos.RouteTargetRequest) gormModels.RouteTarget {
	return gormModels.RouteTarget{
		ID:         id,
		Route:      req.Route,
		TargetTime: req.TargetTime,
		AircraftID: req.AircraftID,
		PilotID:    req.PilotID,
		Month:      req.Month,
		Year:       req.Year,
	}
}

// UpsertTarget creates a target when id is empty, otherwise updates it.
func (s *TargetService) UpsertTarget(ctx context.Context, id string, req *dtos.RouteTargetRequest) (*gormModels.RouteTarget, *ServiceError) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, &ServiceError{
			Code:    constants.ErrCodeValidationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeValidationFailed),
			Fields:  fieldErrs,
		}
	}

	if id == "" {
		target := targetFromRequest(uuid.NewString(), req)
		if err := s.targetRepo.Create(ctx, &target); err != nil {
			return nil, &ServiceError{
				Code:    constants.ErrCodeMutationFailed,
				Message: constants.GetErrorMessage(constants.ErrCodeMutationFailed),
				Err:     err,
			}
		}
		return &target, nil
	}

	target := targetFromRequest(id, req)
	if err := s.targetRepo.Update(ctx, &target); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{
				Code:    constants.ErrCodeTargetNotFound,
				Message: constants.GetErrorMessage(constants.ErrCodeTargetNotFound),
			}
		}
		return nil, &ServiceError{
			Code:    constants.ErrCodeMutationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeMutationFailed),
			Err:     err,
		}
	}
	return &target, nil
}

// DeleteTarget removes a route target.
func (s *TargetService) DeleteTarget(ctx context.Context, id string) *ServiceError {
	if err := s.targetRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{
				Code:    constants.ErrCodeTargetNotFound,
				Message: constants.GetErrorMessage(constants.ErrCodeTargetNotFound),
			}
		}
		return &ServiceError{
			Code:    constants.ErrCodeMutationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeMutationFailed),
			Err:     err,
		}
	}
	return nil
}
