package testhelpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "portal-client-test-key"

// CreateJWT issues an HS256 token for email that expires at exp. The client
// never verifies signatures, so a shared test key is enough.
func (h *TestHelper) CreateJWT(email string, exp time.Time) string {
	claims := jwt.MapClaims{
		"iss":   "HomeVeda",
		"sub":   email,
		"email": email,
		"iat":   exp.Add(-time.Hour).Unix(),
		"exp":   exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSigningKey))
	require.NoError(h.T, err, "Failed to sign test JWT")
	return signed
}
