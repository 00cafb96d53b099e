package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectToken(t *testing.T) {
	expiry := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "7",
		"email": "jane@x.io",
		"role":  "patient",
		"exp":   expiry.Unix(),
	}).SignedString([]byte("any"))
	require.NoError(t, err)

	claims, err := InspectToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "jane@x.io", claims.Email)
	assert.Equal(t, "patient", claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(expiry))
	assert.False(t, claims.Expired(expiry.Add(-time.Hour)))
	assert.True(t, claims.Expired(expiry.Add(time.Hour)))

	_, err = InspectToken("abc123")
	assert.Error(t, err)
	_, err = InspectToken("")
	assert.Error(t, err)

	assert.False(t, (&Claims{}).Expired(time.Now()))
}
