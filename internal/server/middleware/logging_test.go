package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggingMiddleware_Levels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "INFO"},
		{name: "created", status: http.StatusCreated, wantLevel: "INFO"},
		{name: "not found", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := LoggingMiddleware(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/notes", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			entry := decodeLogLine(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "http request", entry["msg"])
			assert.Equal(t, "POST", entry["method"])
			assert.Equal(t, "/api/v1/documents/notes", entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, 4, entry["bytes_written"])
		})
	}
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingMiddleware(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.EqualValues(t, http.StatusOK, decodeLogLine(t, &buf)["status"])
}

func TestLoggingMiddleware_RedactsToken(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingMiddleware(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// обработчик видит настоящий токен
		assert.Equal(t, "secret-token", r.URL.Query().Get(TokenQueryParam))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws?documentId=notes&access_token=secret-token", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "secret-token")
	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "access_token=%2A%2A%2A&documentId=notes", entry["query"])
}

func TestLoggingMiddleware_SkipPaths(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingMiddleware(jsonLogger(&buf), "/api/v1/health")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Empty(t, buf.String())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/other", nil))
	assert.Contains(t, buf.String(), "/api/v1/other")
}

type hijackableRecorder struct {
	*httptest.ResponseRecorder
	conn net.Conn
}

func (h *hijackableRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return h.conn, bufio.NewReadWriter(bufio.NewReader(h.conn), bufio.NewWriter(h.conn)), nil
}

func TestLoggingMiddleware_Hijack(t *testing.T) {
	t.Run("supported", func(t *testing.T) {
		server, client := net.Pipe()
		defer server.Close()
		defer client.Close()

		var buf bytes.Buffer
		handler := LoggingMiddleware(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			assert.Equal(t, server, conn)
		}))

		w := &hijackableRecorder{ResponseRecorder: httptest.NewRecorder(), conn: server}
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil))

		entry := decodeLogLine(t, &buf)
		assert.EqualValues(t, http.StatusSwitchingProtocols, entry["status"])
		assert.Equal(t, true, entry["upgraded"])
	})

	t.Run("unsupported", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
		_, _, err := rec.Hijack()
		assert.Error(t, err)
		assert.False(t, rec.hijacked)
	})
}
