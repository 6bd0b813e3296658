package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

var (
	errReportRejected   = fmt.Errorf("server rejected report")
	errRegisterRejected = fmt.Errorf("server rejected registration")
)

// Reporter pushes snapshots to the server.
type Reporter interface {
	Report(ctx context.Context, snapshot *models.AgentSnapshot) error
}

// HTTPReporter posts snapshots to the server's agent endpoints,
// registering itself on first use or whenever the server forgets it.
type HTTPReporter struct {
	serverURL  string
	token      string
	name       string
	client     *http.Client
	registered bool
}

func NewReporter(serverURL, token, name string) *HTTPReporter {
	return &HTTPReporter{
		serverURL: strings.TrimRight(serverURL, "/"),
		token:     token,
		name:      name,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Report pushes one snapshot. A 404 means the server does not know our
// token yet; register and retry once.
func (r *HTTPReporter) Report(ctx context.Context, snapshot *models.AgentSnapshot) error {
	if !r.registered {
		if err := r.register(ctx, snapshot); err != nil {
			return err
		}
	}

	code, err := r.post(ctx, "/api/agents/status", snapshot, map[string]string{
		"X-Agent-Token": r.token,
	})
	if err != nil {
		return err
	}

	if code == http.StatusNotFound {
		log.Printf("Server does not know this agent, re-registering")

		r.registered = false

		if err := r.register(ctx, snapshot); err != nil {
			return err
		}

		code, err = r.post(ctx, "/api/agents/status", snapshot, map[string]string{
			"X-Agent-Token": r.token,
		})
		if err != nil {
			return err
		}
	}

	if code < 200 || code >= 300 {
		return fmt.Errorf("%w: status %d", errReportRejected, code)
	}

	return nil
}

func (r *HTTPReporter) register(ctx context.Context, snapshot *models.AgentSnapshot) error {
	name := r.name
	if name == "" {
		name = snapshot.Hostname
	}

	payload := map[string]string{
		"token": r.token,
		"name":  name,
	}

	code, err := r.post(ctx, "/api/agents/register", payload, nil)
	if err != nil {
		return err
	}

	if code != http.StatusOK && code != http.StatusCreated {
		return fmt.Errorf("%w: status %d", errRegisterRejected, code)
	}

	r.registered = true

	return nil
}

func (r *HTTPReporter) post(ctx context.Context, path string, body interface{}, headers map[string]string) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.serverURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
