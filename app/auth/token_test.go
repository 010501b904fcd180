package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTVerifier(t *testing.T) {
	verifier := NewJWTVerifier(secret)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	t.Run("valid token", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), Claims{
			ID:               "u1",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.ID)
	})

	t.Run("subject fallback", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{Subject: "u2"})

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "u2", claims.ID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte("other"), Claims{ID: "u1"})
		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), Claims{
			ID:               "u1",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		})
		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS512, []byte(secret), Claims{ID: "u1"})
		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing id", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), Claims{})
		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestUserIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", UserIDFrom(ctx))
	assert.Equal(t, "u1", UserIDFrom(WithUserID(ctx, "u1")))
}
