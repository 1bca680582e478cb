package auth

import (
	"fmt"
	"os"
	"time"

	"fleetops/fleetdeck/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Secret returns the HMAC signing key from the environment.
func Secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// SignToken issues a session token for the dashboard client.
func SignToken(secret []byte, userID, name string, role constants.FleetRole, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		Name: name,
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a bearer token and extracts the session claims.
func ParseToken(secret []byte, raw string) (*JWTClaims, error) {
	var claims tokenClaims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return &JWTClaims{
		UserUUID:  claims.Subject,
		NameVal:   claims.Name,
		RoleValue: constants.FleetRole(claims.Role),
	}, nil
}
