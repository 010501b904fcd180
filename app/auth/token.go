// Package auth verifies the signed session tokens issued by the account
// service and carries the resulting user id through request contexts.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of a session token.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenVerifier turns a signed token into its claims.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// JWTVerifier verifies HS256 tokens against a shared secret.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify checks signature and expiry. Tokens carrying the user id only in
// "sub" are accepted too.
func (v *JWTVerifier) Verify(token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ID == "" {
		claims.ID = claims.Subject
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}
	return &claims, nil
}

type ctxKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFrom returns the authenticated user id, or "" when there is none.
func UserIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
