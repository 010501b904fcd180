package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"estatehub/app/auth"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier accepts tokens of the form "valid:<user id>".
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*auth.Claims, error) {
	const prefix = "valid:"
	if len(token) > len(prefix) && token[:len(prefix)] == prefix {
		return &auth.Claims{ID: token[len(prefix):]}, nil
	}
	return nil, auth.ErrInvalidToken
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(auth.UserIDFrom(r.Context())))
}

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest("POST", "/posts", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: value})
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	mw := NewAuth(stubVerifier{}, "token")
	handler := mw.RequireAuth(http.HandlerFunc(echoUser))

	tests := []struct {
		name    string
		cookie  string
		status  int
		message string
	}{
		{"no cookie", "", http.StatusUnauthorized, "Not Authenticated!"},
		{"invalid token", "forged", http.StatusForbidden, "Token is not Valid!"},
		{"valid token", "valid:u1", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, requestWithCookie(tt.cookie))

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "u1", w.Body.String())
				return
			}
			var body map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	var buf bytes.Buffer
	mw := NewAuth(stubVerifier{}, "token")
	handler := Logger(zerolog.New(&buf))(mw.OptionalAuth(http.HandlerFunc(echoUser)))

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestWithCookie(""))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("invalid token falls back to anonymous", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestWithCookie("forged"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Contains(t, buf.String(), "ignoring invalid session token")
	})

	t.Run("valid token adds user to log", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestWithCookie("valid:u7"))
		assert.Equal(t, "u7", w.Body.String())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "u7", entry["user_id"])
	})
}

func TestStubVerifier(t *testing.T) {
	_, err := stubVerifier{}.Verify("nope")
	assert.True(t, errors.Is(err, auth.ErrInvalidToken))
}
