package api

import (
	"encoding/json"
	"net/http"

	"fleetops/fleetdeck/internal/constants"
	"fleetops/fleetdeck/internal/models/dtos"
	"fleetops/fleetdeck/internal/models/entities"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
	"fleetops/fleetdeck/internal/services"

	"github.com/go-chi/chi/v5"
)

func statusForCode(code string) int {
	switch code {
	case constants.ErrCodeFlightNotFound, constants.ErrCodeTargetNotFound:
		return http.StatusNotFound
	case constants.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case constants.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case constants.ErrCodeMutationFailed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(w http.ResponseWriter, svcErr *services.ServiceError) {
	if svcErr.Code == constants.ErrCodeValidationFailed {
		respondWithFieldErrors(w, svcErr.Message, svcErr.Fields)
		return
	}
	respondWithError(w, statusForCode(svcErr.Code), svcErr.Message)
}

// ListFlightsHandler returns the full logbook, newest first.
func ListFlightsHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights, svcErr := fltSvc.ListFlights(r.Context())
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		respondWithSuccess(w, http.StatusOK, &flights)
	}
}

// GetFlightHandler returns one logbook entry by id.
func GetFlightHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "flight_id")
		if id == "" {
			respondWithError(w, http.StatusBadRequest, "Missing flight id")
			return
		}

		flight, svcErr := fltSvc.GetFlight(r.Context(), id)
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		respondWithSuccess(w, http.StatusOK, flight)
	}
}

func decodeFlightRequest(w http.ResponseWriter, r *http.Request) (*dtos.FlightRequest, bool) {
	var req dtos.FlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return &req, true
}

// CreateFlightHandler files a new logbook entry.
func CreateFlightHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeFlightRequest(w, r)
		if !ok {
			return
		}

		flight, svcErr := fltSvc.CreateFlight(r.Context(), req)
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		respondWithSuccess(w, http.StatusCreated, flight)
	}
}

// UpdateFlightHandler replaces an existing logbook entry.
func UpdateFlightHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "flight_id")
		if id == "" {
			respondWithError(w, http.StatusBadRequest, "Missing flight id")
			return
		}

		req, ok := decodeFlightRequest(w, r)
		if !ok {
			return
		}

		flight, svcErr := fltSvc.UpdateFlight(r.Context(), id, req)
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		respondWithSuccess(w, http.StatusOK, flight)
	}
}

// DeleteFlightHandler removes a logbook entry.
func DeleteFlightHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "flight_id")
		if id == "" {
			respondWithError(w, http.StatusBadRequest, "Missing flight id")
			return
		}

		if svcErr := fltSvc.DeleteFlight(r.Context(), id); svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}

		deleted := gormModels.Flight{ID: id}
		respondWithSuccess(w, http.StatusOK, &deleted)
	}
}

// SquawkReportHandler lists flights with open squawks for the safety view.
func SquawkReportHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, svcErr := fltSvc.GetSquawkReport(r.Context())
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		if rows == nil {
			rows = []entities.SquawkReportRow{}
		}
		respondWithSuccess(w, http.StatusOK, &rows)
	}
}
