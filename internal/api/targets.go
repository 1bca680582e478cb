package api

import (
	"encoding/json"
	"net/http"

	"fleetops/fleetdeck/internal/models/dtos"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
	"fleetops/fleetdeck/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListTargetsHandler returns all configured route targets.
func ListTargetsHandler(targetSvc *services.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targets, svcErr := targetSvc.ListTargets(r.Context())
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		respondWithSuccess(w, http.StatusOK, &targets)
	}
}

func decodeTargetRequest(w http.ResponseWriter, r *http.Request) (*dtos.RouteTargetRequest, bool) {
	var req dtos.RouteTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return &req, true
}

// CreateTargetHandler configures a new route target time.
func CreateTargetHandler(targetSvc *services.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTargetRequest(w, r)
		if !ok {
			return
		}

		target, svcErr := targetSvc.UpsertTarget(r.Context(), "", req)
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		respondWithSuccess(w, http.StatusCreated, target)
	}
}

// UpdateTargetHandler replaces an existing route target.
func UpdateTargetHandler(targetSvc *services.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "target_id")
		if id == "" {
			respondWithError(w, http.StatusBadRequest, "Missing target id")
			return
		}

		req, ok := decodeTargetRequest(w, r)
		if !ok {
			return
		}

		target, svcErr := targetSvc.UpsertTarget(r.Context(), id, req)
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		respondWithSuccess(w, http.StatusOK, target)
	}
}

// DeleteTargetHandler removes a route target.
func DeleteTargetHandler(targetSvc *services.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "target_id")
		if id == "" {
			respondWithError(w, http.StatusBadRequest, "Missing target id")
			return
		}

		if svcErr := targetSvc.DeleteTarget(r.Context(), id); svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}

		deleted := gormModels.RouteTarget{ID: id}
		respondWithSuccess(w, http.StatusOK, &deleted)
	}
}
