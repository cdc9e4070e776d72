package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_ReturnsOK(t *testing.T) {
	env := newTestEnv()
	hc := NewHealthController(env.logger, env.library, env.notifications, env.revenue)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, float64(0), resp["library_items"])
	assert.Equal(t, float64(0), resp["revenue_records"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	env := newTestEnv()
	hc := NewHealthController(env.logger, env.library, env.notifications, env.revenue)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHealth_CountsReflected(t *testing.T) {
	env := newTestEnv()
	ac := env.api()
	require.Equal(t, http.StatusCreated, publish(t, ac, publishBody).Code)
	ac.View(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/library/view?id=v1", nil))

	hc := NewHealthController(env.logger, env.library, env.notifications, env.revenue)
	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp struct {
		LibraryItems   int            `json:"library_items"`
		RevenueRecords int            `json:"revenue_records"`
		Unread         map[string]int `json:"unread_notifications"`
	}
	require.NoError(t, json.NewDecoder(strings.NewReader(rr.Body.String())).Decode(&resp))
	assert.Equal(t, 1, resp.LibraryItems)
	assert.Equal(t, 1, resp.RevenueRecords)
	assert.Equal(t, map[string]int{"audience": 1, "admin": 1}, resp.Unread)
}

type failingUnread struct {
	services.NotificationServiceInterface
	failing models.Stream
}

func (f *failingUnread) UnreadCount(s models.Stream) (int, error) {
	if s == f.failing {
		return 0, errors.New("stream unavailable")
	}
	return f.NotificationServiceInterface.UnreadCount(s)
}

func TestHealth_UnreadCountErrorLoggedAndOmitted(t *testing.T) {
	env := newTestEnv()
	notifications := &failingUnread{NotificationServiceInterface: env.notifications, failing: models.StreamAdmin}
	hc := NewHealthController(env.logger, env.library, notifications, env.revenue)

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Unread map[string]int `json:"unread_notifications"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, map[string]int{"audience": 0}, resp.Unread)
	require.Equal(t, 1, env.logger.Count("error"))
	assert.Equal(t, providers.TypeApp, env.logger.Logs[0].Type)
	assert.Contains(t, env.logger.Logs[0].Format, "Unread count")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
