package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

var (
	// ErrWebhookDisabled is returned when an alert is dropped because
	// the alerter is switched off.
	ErrWebhookDisabled = fmt.Errorf("webhook alerter is disabled")
	// ErrWebhookCooldown is returned when a repeat alert falls inside
	// the cooldown window.
	ErrWebhookCooldown = fmt.Errorf("alert is within cooldown period")

	errWebhookStatus = fmt.Errorf("webhook returned non-2xx status")
)

type WebhookConfig struct {
	Enabled  bool          `json:"enabled"`
	URL      string        `json:"url"`
	Headers  []Header      `json:"headers,omitempty"`
	Cooldown time.Duration `json:"cooldown,omitempty"`
}

type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type AlertLevel string

const (
	Info    AlertLevel = "info"
	Warning AlertLevel = "warning"
	Error   AlertLevel = "error"
)

// WebhookAlert is the JSON body posted to the configured endpoint.
type WebhookAlert struct {
	Level     AlertLevel     `json:"level"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	MonitorID int64          `json:"monitor_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

func (w *WebhookConfig) UnmarshalJSON(data []byte) error {
	type Alias WebhookConfig

	aux := &struct {
		Cooldown string `json:"cooldown"`
		*Alias
	}{
		Alias: (*Alias)(w),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Cooldown != "" {
		duration, err := time.ParseDuration(aux.Cooldown)
		if err != nil {
			return fmt.Errorf("invalid cooldown format: %w", err)
		}

		w.Cooldown = duration
	}

	return nil
}

// WebhookAlerter posts alerts to a single webhook endpoint with a
// per-title cooldown so a flapping monitor cannot flood the channel.
type WebhookAlerter struct {
	config         WebhookConfig
	client         *http.Client
	lastAlertTimes map[string]time.Time
	mu             sync.Mutex
}

func NewWebhookAlerter(config WebhookConfig) *WebhookAlerter {
	return &WebhookAlerter{
		config: config,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		lastAlertTimes: make(map[string]time.Time),
	}
}

func (w *WebhookAlerter) IsEnabled() bool {
	return w.config.Enabled
}

func (w *WebhookAlerter) Alert(ctx context.Context, alert *WebhookAlert) error {
	if !w.IsEnabled() {
		return ErrWebhookDisabled
	}

	if err := w.checkCooldown(alert.Title); err != nil {
		return err
	}

	if alert.Timestamp == "" {
		alert.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	return w.sendRequest(ctx, payload)
}

func (w *WebhookAlerter) checkCooldown(alertTitle string) error {
	if w.config.Cooldown <= 0 {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	lastAlertTime, exists := w.lastAlertTimes[alertTitle]
	if exists && time.Since(lastAlertTime) < w.config.Cooldown {
		log.Printf("Alert '%s' is within cooldown period, skipping", alertTitle)
		return ErrWebhookCooldown
	}

	w.lastAlertTimes[alertTitle] = time.Now()

	return nil
}

func (w *WebhookAlerter) sendRequest(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.config.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	w.setHeaders(req)

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return fmt.Errorf("%w: status=%d body=%s", errWebhookStatus, resp.StatusCode, body)
	}

	return nil
}

func (w *WebhookAlerter) setHeaders(req *http.Request) {
	hasContentType := false

	for _, header := range w.config.Headers {
		if strings.EqualFold(header.Key, "content-type") {
			hasContentType = true
		}

		req.Header.Set(header.Key, header.Value)
	}

	if !hasContentType {
		req.Header.Set("Content-Type", "application/json")
	}
}

// TransitionAlerter adapts status transitions into webhook alerts. It
// implements monitoring.TransitionListener.
type TransitionAlerter struct {
	alerters []AlertService
}

func NewTransitionAlerter(alerters ...AlertService) *TransitionAlerter {
	return &TransitionAlerter{alerters: alerters}
}

func (t *TransitionAlerter) NotifyTransition(ctx context.Context, monitor *models.Monitor, transition *models.StatusTransition) {
	alert := &WebhookAlert{
		Level:     levelFor(transition.Status),
		Title:     fmt.Sprintf("Monitor %s is %s", monitor.Name, transition.Status),
		Message:   fmt.Sprintf("Monitor %q changed status to %s", monitor.Name, transition.Status),
		Timestamp: transition.Timestamp.UTC().Format(time.RFC3339),
		MonitorID: monitor.ID,
		Details: map[string]any{
			"url":    monitor.URL,
			"uptime": monitor.Uptime,
		},
	}

	for _, alerter := range t.alerters {
		if !alerter.IsEnabled() {
			continue
		}

		if err := alerter.Alert(ctx, alert); err != nil {
			log.Printf("Error sending alert for monitor %d: %v", monitor.ID, err)
		}
	}
}

func levelFor(status string) AlertLevel {
	if status == models.StatusDown {
		return Error
	}

	return Info
}
