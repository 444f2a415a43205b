package security

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of a session token minted by the hosted
// users service. The subject is the opaque user id the core trusts.
type SessionClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) UserID() string {
	return c.Subject
}
