package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the display-only view of a JWT credential.
type Claims struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past. It is
// informational: the session never acts on it.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// InspectToken decodes JWT claims without verifying the signature. Opaque
// tokens yield an error and should simply be shown as-is.
func InspectToken(token string) (*Claims, error) {
	if token == "" {
		return nil, errors.New("no credential")
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("credential is not a JWT: %w", err)
	}
	ret := &Claims{}
	ret.Subject, _ = claims.GetSubject()
	if exp, _ := claims.GetExpirationTime(); exp != nil {
		ret.ExpiresAt = exp.Time
	}
	ret.Email, _ = claims["email"].(string)
	ret.Role, _ = claims["role"].(string)
	return ret, nil
}
