package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid token", func(t *testing.T) {
		s := signedToken(t, jwt.MapClaims{
			"email": "admin@example.com",
			"role":  "admin",
			"exp":   now.Add(time.Hour).Unix(),
		})

		claims, err := inspectAt(s, now)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("expired token", func(t *testing.T) {
		s := signedToken(t, jwt.MapClaims{
			"email": "admin@example.com",
			"exp":   now.Add(-time.Minute).Unix(),
		})

		claims, err := inspectAt(s, now)
		assert.ErrorIs(t, err, ErrExpired)
		// Claims still come back for the "expired at ..." message.
		assert.Equal(t, "admin@example.com", claims.Email)
	})

	t.Run("sub fallback", func(t *testing.T) {
		s := signedToken(t, jwt.MapClaims{"sub": "root@example.com"})
		claims, err := inspectAt(s, now)
		require.NoError(t, err)
		assert.Equal(t, "root@example.com", claims.Email)
	})

	t.Run("no expiry claim", func(t *testing.T) {
		s := signedToken(t, jwt.MapClaims{"email": "a@b.c"})
		_, err := inspectAt(s, now)
		assert.NoError(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := inspectAt("not-a-jwt", now)
		assert.Error(t, err)
	})
}
