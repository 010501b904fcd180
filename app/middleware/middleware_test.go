package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/posts", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/posts", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
	}{
		{"ok is info", http.StatusOK, "info"},
		{"not found is warn", http.StatusNotFound, "warn"},
		{"failure is error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := zerolog.New(&buf)

			handler := RequestID(Logger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				zerolog.Ctx(r.Context()).Debug().Msg("inside handler")
				w.WriteHeader(tt.status)
			})))

			req := httptest.NewRequest("GET", "/posts/p1", nil)
			req.Header.Set(RequestIDHeader, "req-1")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 2)
			assert.Equal(t, "req-1", lines[0]["request_id"])

			access := lines[1]
			assert.Equal(t, tt.level, access["level"])
			assert.Equal(t, float64(tt.status), access["status"])
			assert.Equal(t, "GET", access["method"])
			assert.Equal(t, "/posts/p1", access["path"])
			assert.Equal(t, "req-1", access["request_id"])
		})
	}
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	handler := Logger(zerolog.New(&buf))(Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["code"])

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "test panic", lines[0]["error"])
	assert.Equal(t, "error", lines[1]["level"])
}

func TestContentTypeJSON(t *testing.T) {
	handler := ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/posts", nil))

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
