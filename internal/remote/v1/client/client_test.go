package client

import (
	"biometric-query/internal/biometric/models"
	"biometric-query/internal/config"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		RemoteService: config.RemoteService{
			BaseURL:    baseURL,
			MatchPath:  "/api/v1/biometrics/query",
			HealthPath: "/api/v1/healthz",
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := zerolog.Nop()
	c, err := NewClient(testConfig(server.URL), &logger)
	require.NoError(t, err)
	return c
}

func TestNewClientRejectsBadURL(t *testing.T) {
	logger := zerolog.Nop()
	for _, baseURL := range []string{"", "localhost:3333", "ftp://example.org", "http://"} {
		_, err := NewClient(testConfig(baseURL), &logger)
		require.Error(t, err, baseURL)
	}
}

func TestProcessBiometricQuerySendsRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/biometrics/query", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.QueryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dGVtcGxhdGU=", req.Template)
		assert.Equal(t, "index_right", req.FingerType)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_granted": true,
			"person_id":      "42",
			"similarity":     0.91,
		})
	})

	result, err := c.ProcessBiometricQuery(context.Background(), "dGVtcGxhdGU=", "index_right")
	require.NoError(t, err)
	require.True(t, result.AccessGranted)
	require.Equal(t, "42", result.PersonID)
	require.Equal(t, 0.91, result.Similarity)
}

func TestProcessBiometricQueryAccessGrantedMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"reason":"no match"}`)
	})

	result, err := c.ProcessBiometricQuery(context.Background(), "dGVtcGxhdGU=", "thumb_left")
	require.NoError(t, err)
	require.False(t, result.AccessGranted)
	require.Equal(t, "no match", result.Reason)
}

func TestProcessBiometricQueryAccessGrantedNull(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"access_granted":null}`)
	})

	result, err := c.ProcessBiometricQuery(context.Background(), "dGVtcGxhdGU=", "thumb_left")
	require.NoError(t, err)
	require.False(t, result.AccessGranted)
}

func TestProcessBiometricQueryErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "client error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "template could not be decoded", http.StatusBadRequest)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"access_granted":`)
			},
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `null`)
			},
		},
		{
			name: "redirect status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusMultipleChoices)
				_, _ = io.WriteString(w, `{"access_granted":true}`)
			},
		},
		{
			name: "wrongly typed field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"access_granted":"yes"}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			result, err := c.ProcessBiometricQuery(context.Background(), "dGVtcGxhdGU=", "index_left")
			require.Error(t, err)
			require.Nil(t, result)
		})
	}
}

func TestProcessBiometricQueryUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	logger := zerolog.Nop()
	c, err := NewClient(testConfig(url), &logger)
	require.NoError(t, err)

	_, err = c.ProcessBiometricQuery(context.Background(), "dGVtcGxhdGU=", "index_left")
	require.Error(t, err)
}

func TestProcessBiometricQuerySendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer s3cr3t", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"access_granted":false}`)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.RemoteService.Token = "s3cr3t"
	logger := zerolog.Nop()
	c, err := NewClient(cfg, &logger)
	require.NoError(t, err)

	result, err := c.ProcessBiometricQuery(context.Background(), "dGVtcGxhdGU=", "ring_left")
	require.NoError(t, err)
	require.False(t, result.AccessGranted)
}

func TestProcessBiometricQueryAcceptsAny2xx(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{"access_granted":true}`)
	})

	result, err := c.ProcessBiometricQuery(context.Background(), "dGVtcGxhdGU=", "thumb_right")
	require.NoError(t, err)
	require.True(t, result.AccessGranted)
}

func TestHealthCheckNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.HealthCheck(context.Background()))
}

func TestHealthCheck(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, c.HealthCheck(context.Background()))
}

func TestHealthCheckFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	require.Error(t, c.HealthCheck(context.Background()))
}
