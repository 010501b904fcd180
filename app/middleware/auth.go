package middleware

import (
	"context"
	"net/http"

	"estatehub/app/auth"
	"estatehub/app/errs"

	"github.com/rs/zerolog"
)

// Auth reads the session token from a cookie and verifies it.
type Auth struct {
	verifier   auth.TokenVerifier
	cookieName string
}

func NewAuth(verifier auth.TokenVerifier, cookieName string) *Auth {
	return &Auth{verifier: verifier, cookieName: cookieName}
}

// RequireAuth rejects requests without a cookie (401) or with a token
// that fails verification (403).
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookieName)
		if err != nil || cookie.Value == "" {
			errs.NewUnauthorizedError("Not Authenticated!").Write(w)
			return
		}

		claims, err := a.verifier.Verify(cookie.Value)
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("rejected session token")
			errs.NewForbiddenError("Token is not Valid!").Write(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(a.authenticate(r, claims.ID)))
	})
}

// OptionalAuth attaches the user id when a valid token is present and
// otherwise lets the request through anonymously.
func (a *Auth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := a.verifier.Verify(cookie.Value)
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("ignoring invalid session token")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(a.authenticate(r, claims.ID)))
	})
}

func (a *Auth) authenticate(r *http.Request, userID string) context.Context {
	zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("user_id", userID)
	})
	return auth.WithUserID(r.Context(), userID)
}
