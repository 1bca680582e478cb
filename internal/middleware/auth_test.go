package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleetops/fleetdeck/internal/auth"
	"fleetops/fleetdeck/internal/constants"
)

func TestAuthMiddleware_MissingCredentials(t *testing.T) {
	handler := AuthMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler must not run without credentials")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	want := constants.GetErrorMessage(constants.ErrCodeUnauthorized)
	if body := rec.Body.String(); !strings.Contains(body, want) {
		t.Errorf("Body = %q, want it to contain %q", body, want)
	}
}

func TestAuthMiddleware_InvalidBearerToken(t *testing.T) {
	handler := AuthMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler must not run with a bad token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestIsAdminMiddleware(t *testing.T) {
	handler := IsAdminMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/targets", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("Status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		want := constants.GetErrorMessage(constants.ErrCodeUnauthorized)
		if body := rec.Body.String(); !strings.Contains(body, want) {
			t.Errorf("Body = %q, want it to contain %q", body, want)
		}
	})

	t.Run("non-admin claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/targets", nil)
		ctx := auth.SetUserClaims(req.Context(), &auth.APIKeyClaims{KeyID: "key-1"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("Status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("admin claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/targets", nil)
		ctx := auth.SetUserClaims(req.Context(), &auth.JWTClaims{UserUUID: "u1", RoleValue: constants.RoleAdmin})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))

		if rec.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}
