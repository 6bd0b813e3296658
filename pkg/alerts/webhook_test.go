package alerts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookAlerterPostsAlert(t *testing.T) {
	var received WebhookAlert

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	alerter := NewWebhookAlerter(WebhookConfig{
		Enabled: true,
		URL:     server.URL,
		Headers: []Header{{Key: "X-Api-Key", Value: "secret"}},
	})

	err := alerter.Alert(context.Background(), &WebhookAlert{
		Level:     Error,
		Title:     "Monitor web is down",
		MonitorID: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, Error, received.Level)
	assert.Equal(t, int64(3), received.MonitorID)
	assert.NotEmpty(t, received.Timestamp, "timestamp is filled in when missing")
}

func TestWebhookAlerterDisabled(t *testing.T) {
	alerter := NewWebhookAlerter(WebhookConfig{Enabled: false})

	err := alerter.Alert(context.Background(), &WebhookAlert{Title: "ignored"})
	assert.ErrorIs(t, err, ErrWebhookDisabled)
}

func TestWebhookAlerterCooldown(t *testing.T) {
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	alerter := NewWebhookAlerter(WebhookConfig{
		Enabled:  true,
		URL:      server.URL,
		Cooldown: time.Minute,
	})

	alert := &WebhookAlert{Title: "Monitor web is down"}

	require.NoError(t, alerter.Alert(context.Background(), alert))

	err := alerter.Alert(context.Background(), alert)
	assert.ErrorIs(t, err, ErrWebhookCooldown)

	// A different title is a different cooldown bucket.
	require.NoError(t, alerter.Alert(context.Background(), &WebhookAlert{Title: "Monitor api is down"}))

	assert.Equal(t, 2, calls)
}

func TestWebhookAlerterNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	alerter := NewWebhookAlerter(WebhookConfig{Enabled: true, URL: server.URL})

	err := alerter.Alert(context.Background(), &WebhookAlert{Title: "t"})
	assert.ErrorIs(t, err, errWebhookStatus)
}

func TestWebhookConfigCooldownParsing(t *testing.T) {
	var cfg WebhookConfig

	require.NoError(t, json.Unmarshal([]byte(`{
		"enabled": true,
		"url": "https://hooks.example.com/x",
		"cooldown": "5m"
	}`), &cfg))

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cooldown)

	err := json.Unmarshal([]byte(`{"cooldown": "bogus"}`), &cfg)
	assert.Error(t, err)
}

func TestTransitionAlerterBuildsAlert(t *testing.T) {
	var received WebhookAlert

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	alerter := NewWebhookAlerter(WebhookConfig{Enabled: true, URL: server.URL})
	ta := NewTransitionAlerter(alerter)

	now := time.Now()
	monitor := &models.Monitor{ID: 2, Name: "web", URL: "http://example.com", Uptime: 98.7}
	transition := &models.StatusTransition{MonitorID: 2, Status: models.StatusDown, Timestamp: now}

	ta.NotifyTransition(context.Background(), monitor, transition)

	assert.Equal(t, Error, received.Level)
	assert.Equal(t, "Monitor web is down", received.Title)
	assert.Equal(t, int64(2), received.MonitorID)
}

func TestTransitionAlerterSkipsDisabled(t *testing.T) {
	ta := NewTransitionAlerter(NewWebhookAlerter(WebhookConfig{Enabled: false}))

	// Must not panic or attempt delivery.
	ta.NotifyTransition(context.Background(), &models.Monitor{ID: 1, Name: "web"},
		&models.StatusTransition{Status: models.StatusUp, Timestamp: time.Now()})
}
