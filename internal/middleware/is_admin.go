package middleware

import (
	"net/http"

	"fleetops/fleetdeck/internal/auth"
	"fleetops/fleetdeck/internal/constants"
)

// IsAdminMiddleware gates write access to the target-management endpoints.
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !claims.IsAdmin() {
				http.Error(w, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
