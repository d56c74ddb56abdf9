package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	// Setup
	deps := newTestDeps()
	deps.Config.Server.Version = "1.2.3"
	router := New(deps)

	t.Run("returns 200 OK", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns correct JSON structure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		// Check required fields exist
		assert.Contains(t, response, "status")
		assert.Contains(t, response, "timestamp")
		assert.Contains(t, response, "version")

		// Check field values
		assert.Equal(t, "ok", response["status"])
		assert.Equal(t, "1.2.3", response["version"])
	})

	t.Run("returns valid RFC3339 timestamp", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		beforeRequest := time.Now().UTC()
		router.ServeHTTP(w, req)
		afterRequest := time.Now().UTC()

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		timestampStr, ok := response["timestamp"].(string)
		require.True(t, ok, "timestamp should be a string")

		timestamp, err := time.Parse(time.RFC3339, timestampStr)
		require.NoError(t, err, "timestamp should be valid RFC3339 format")

		assert.True(t, timestamp.After(beforeRequest.Add(-time.Second)), "timestamp should be after request start")
		assert.True(t, timestamp.Before(afterRequest.Add(time.Second)), "timestamp should be before request end")
	})

	t.Run("handles concurrent requests", func(t *testing.T) {
		const numRequests = 10
		results := make(chan int, numRequests)

		// Use unique IP for this test to avoid rate limiting
		testIP := "192.0.3.1:12345"

		for i := 0; i < numRequests; i++ {
			go func() {
				req := httptest.NewRequest(http.MethodGet, "/health", nil)
				req.RemoteAddr = testIP
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				results <- w.Code
			}()
		}

		for i := 0; i < numRequests; i++ {
			statusCode := <-results
			assert.Equal(t, http.StatusOK, statusCode)
		}
	})

	t.Run("does not accept POST method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		req.RemoteAddr = "192.0.4.1:12345" // Unique IP to avoid rate limiting
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
