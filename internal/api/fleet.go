package api

import (
	"net/http"

	"fleetops/fleetdeck/internal/constants"
	"fleetops/fleetdeck/internal/db/repositories"
	"fleetops/fleetdeck/internal/services"
)

// ListAircraftHandler returns the active fleet.
func ListAircraftHandler(aircraftRepo *repositories.AircraftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aircraft, err := aircraftRepo.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.GetErrorMessage(constants.ErrCodeFetchFailed))
			return
		}
		respondWithSuccess(w, http.StatusOK, &aircraft)
	}
}

// ListPilotsHandler returns the active pilot roster.
func ListPilotsHandler(pilotRepo *repositories.PilotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pilots, err := pilotRepo.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.GetErrorMessage(constants.ErrCodeFetchFailed))
			return
		}
		respondWithSuccess(w, http.StatusOK, &pilots)
	}
}

// RefreshHandler re-runs the projection bootstrap; this backs the dashboard
// retry action after a fetch failure.
func RefreshHandler(bootstrapper *services.Bootstrapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := bootstrapper.Run(r.Context()); err != nil {
			respondWithError(w, http.StatusBadGateway, constants.GetErrorMessage(constants.ErrCodeFetchFailed))
			return
		}
		msg := "Projections refreshed"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
