package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/pkg/api"
)

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		panics  bool
	}{
		{
			name: "no panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
		{
			name:    "string panic",
			handler: func(w http.ResponseWriter, r *http.Request) { panic("something went wrong") },
			panics:  true,
		},
		{
			name:    "error panic",
			handler: func(w http.ResponseWriter, r *http.Request) { panic(errors.New("boom")) },
			panics:  true,
		},
		{
			name:    "nil map write",
			handler: func(w http.ResponseWriter, r *http.Request) { var m map[string]int; m["x"] = 1 },
			panics:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			handler := RecoveryMiddleware(jsonLogger(&logs))(tt.handler)

			w := httptest.NewRecorder()
			require.NotPanics(t, func() {
				handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/documents/x", nil))
			})

			if !tt.panics {
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Empty(t, logs.String())
				return
			}

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "internal server error", resp.Message)

			entry := decodeLogLine(t, &logs)
			assert.Equal(t, "panic recovered", entry["msg"])
			assert.Contains(t, entry["stack"], "runtime/debug.Stack")
		})
	}
}

func TestRecoveryMiddleware_AbortHandler(t *testing.T) {
	handler := RecoveryMiddleware(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestMiddlewareChain(t *testing.T) {
	var logs bytes.Buffer
	logger := jsonLogger(&logs)

	handler := LoggingMiddleware(logger)(RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("chain")
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/documents/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, logs.String(), `"status":500`)
}
