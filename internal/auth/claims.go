package auth

import "fleetops/fleetdeck/internal/constants"

// UserClaims is the authenticated identity carried through request context.
type UserClaims interface {
	UserID() string
	Name() string
	Role() string
	Source() string
	IsAdmin() bool
}

type JWTClaims struct {
	UserUUID  string
	NameVal   string
	RoleValue constants.FleetRole
}

func (c *JWTClaims) UserID() string { return c.UserUUID }
func (c *JWTClaims) Name() string   { return c.NameVal }
func (c *JWTClaims) Role() string {
	return c.RoleValue.String()
}
func (c *JWTClaims) Source() string { return "JWT" }
func (c *JWTClaims) IsAdmin() bool  { return c.RoleValue == constants.RoleAdmin }

// APIKeyClaims represents a service client authenticated by API key.
// Key-based clients get dispatcher-level access, never admin.
type APIKeyClaims struct {
	KeyID string
}

func (c *APIKeyClaims) UserID() string { return c.KeyID }
func (c *APIKeyClaims) Name() string   { return "api-key" }
func (c *APIKeyClaims) Role() string   { return constants.RoleDispatcher.String() }
func (c *APIKeyClaims) Source() string { return "API_KEY" }
func (c *APIKeyClaims) IsAdmin() bool  { return false }
