package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.BaseURL())
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "testuser", req.Username)
		assert.Equal(t, "correct-horse-battery", req.Password)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{
			UserID:  "user-123",
			Message: "Registration successful",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Username: "testuser",
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, "Registration successful", resp.Message)
}

// TestClient_Errors проверяет обработку ошибок сервера
func TestClient_Errors(t *testing.T) {
	tests := []struct {
		responseBody   any
		target         error
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "conflict with message",
			statusCode:     http.StatusConflict,
			responseBody:   api.ErrorResponse{Error: "conflict", Message: "user already exists"},
			expectedErrMsg: "server error (409): user already exists",
		},
		{
			name:           "unauthorized",
			statusCode:     http.StatusUnauthorized,
			responseBody:   api.ErrorResponse{Error: "invalid credentials"},
			expectedErrMsg: "server error (401): invalid credentials",
			target:         ErrUnauthorized,
		},
		{
			name:           "not json",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "boom",
			expectedErrMsg: "server error (500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if s, ok := tt.responseBody.(string); ok {
					_, _ = w.Write([]byte(s))
					return
				}
				_ = json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.Login(context.Background(), api.LoginRequest{Username: "u", Password: "p"})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.statusCode, statusErr.StatusCode)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken: "jwt",
			UserID:      "user-123",
			ExpiresIn:   900,
		})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Login(context.Background(), api.LoginRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.AccessToken)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, int64(900), resp.ExpiresIn)
}

func TestClient_GetDocument(t *testing.T) {
	updated := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))

		if r.URL.Path != "/api/v1/documents/doc-1" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "document not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.DocumentResponse{
			ID:        "doc-1",
			Content:   "<p>saved</p>",
			Revision:  4,
			UpdatedBy: "user-123",
			UpdatedAt: updated,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	doc, err := client.GetDocument(context.Background(), "jwt", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "<p>saved</p>", doc.Content)
	assert.Equal(t, int64(4), doc.Revision)
	assert.True(t, updated.Equal(doc.UpdatedAt))

	_, err = client.GetDocument(context.Background(), "jwt", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	assert.NoError(t, NewClient(server.URL).Health(context.Background()))

	server.Close()
	assert.Error(t, NewClient(server.URL).Health(context.Background()))
}
