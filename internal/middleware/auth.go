package middleware

import (
	"net/http"
	"strings"

	"fleetops/fleetdeck/internal/auth"
	"fleetops/fleetdeck/internal/constants"
	"fleetops/fleetdeck/internal/db/repositories"
)

// AuthMiddleware authenticates either a dashboard session (Bearer JWT) or a
// service client (X-API-Key validated against the keys table).
func AuthMiddleware(keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				raw := strings.TrimPrefix(authHeader, "Bearer ")
				parsed, err := auth.ParseToken(auth.Secret(), raw)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid session token", http.StatusUnauthorized)
					return
				}
				claims = parsed

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}

				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}

				claims = &auth.APIKeyClaims{KeyID: keyRes.ApiKey}

			default:
				http.Error(w, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
