package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-test-secret-test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenClaims_Decodes(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub":   "user-9",
		"email": "a@b.com",
		"exp":   exp.Unix(),
	})

	claims, err := TokenClaims(token)

	require.NoError(t, err)
	assert.Equal(t, "user-9", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
	assert.False(t, claims.Expired(time.Now()))
}

func TestTokenClaims_Expired(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub": "user-9",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := TokenClaims(token)

	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestTokenClaims_NoExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-9"})

	claims, err := TokenClaims(token)

	require.NoError(t, err)
	assert.False(t, claims.Expired(time.Now()), "tokens without exp are treated as unexpired")
}

func TestTokenClaims_Garbage(t *testing.T) {
	_, err := TokenClaims("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
