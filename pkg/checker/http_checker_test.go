package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMonitor(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid http", url: "http://example.com"},
		{name: "valid https with path", url: "https://example.com/health"},
		{name: "empty", url: "", wantErr: true},
		{name: "whitespace", url: "   ", wantErr: true},
		{name: "no scheme", url: "example.com", wantErr: true},
		{name: "no host", url: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMonitor(&models.Monitor{URL: tt.url})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecuteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "token-123", r.Header.Get("X-Api-Key"))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chk := NewHTTPChecker()

	outcome := chk.Execute(context.Background(), &models.Monitor{
		URL:            server.URL,
		ExpectedStatus: 2,
		Timeout:        5,
		Headers:        map[string]string{"X-Api-Key": "token-123"},
	})

	assert.Equal(t, models.StatusUp, outcome.Status)
	assert.True(t, outcome.Up())
	require.NotNil(t, outcome.StatusCode)
	assert.Equal(t, http.StatusOK, *outcome.StatusCode)
	require.NotNil(t, outcome.ResponseTime)
	assert.GreaterOrEqual(t, *outcome.ResponseTime, int64(0))
	assert.Empty(t, outcome.Error)
}

func TestExecuteStatusClassMatch(t *testing.T) {
	tests := []struct {
		name     string
		respond  int
		expected int
		want     string
	}{
		{name: "2xx class accepts 204", respond: http.StatusNoContent, expected: 2, want: models.StatusUp},
		{name: "2xx class rejects 301", respond: http.StatusMovedPermanently, expected: 2, want: models.StatusDown},
		{name: "3xx class accepts 301", respond: http.StatusMovedPermanently, expected: 3, want: models.StatusUp},
		{name: "exact code accepts", respond: http.StatusTeapot, expected: 418, want: models.StatusUp},
		{name: "exact code rejects near miss", respond: http.StatusOK, expected: 201, want: models.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.respond)
			}))
			defer server.Close()

			chk := newUnredirectedChecker()

			outcome := chk.Execute(context.Background(), &models.Monitor{
				URL:            server.URL,
				ExpectedStatus: tt.expected,
				Timeout:        5,
			})

			assert.Equal(t, tt.want, outcome.Status)
		})
	}
}

// newUnredirectedChecker keeps 3xx responses observable instead of
// letting the client follow them.
func newUnredirectedChecker() *HTTPChecker {
	chk := NewHTTPChecker()
	chk.client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return chk
}

func TestExecuteMismatchKeepsMeasurements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	chk := NewHTTPChecker()

	outcome := chk.Execute(context.Background(), &models.Monitor{
		URL:            server.URL,
		ExpectedStatus: 2,
		Timeout:        5,
	})

	assert.Equal(t, models.StatusDown, outcome.Status)
	require.NotNil(t, outcome.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, *outcome.StatusCode)
	require.NotNil(t, outcome.ResponseTime)
	assert.Contains(t, outcome.Error, "got 500")
	assert.Contains(t, outcome.Error, "want 2xx")
}

func TestExecuteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	chk := NewHTTPChecker()

	start := time.Now()
	outcome := chk.Execute(context.Background(), &models.Monitor{
		URL:            server.URL,
		ExpectedStatus: 2,
		Timeout:        1,
	})
	elapsed := time.Since(start)

	assert.Equal(t, models.StatusDown, outcome.Status)
	assert.Nil(t, outcome.ResponseTime, "no latency recorded without a response")
	assert.Nil(t, outcome.StatusCode)
	assert.Contains(t, outcome.Error, "timeout after 1s")
	assert.Less(t, elapsed, 3*time.Second)
}

func TestExecuteConnectionRefused(t *testing.T) {
	// Grab a port nothing listens on.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	chk := NewHTTPChecker()

	outcome := chk.Execute(context.Background(), &models.Monitor{
		URL:            url,
		ExpectedStatus: 2,
		Timeout:        2,
	})

	assert.Equal(t, models.StatusDown, outcome.Status)
	assert.NotEmpty(t, outcome.Error)
	assert.Nil(t, outcome.StatusCode)
}

func TestExecuteSendsBodyForPost(t *testing.T) {
	var gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chk := NewHTTPChecker()

	outcome := chk.Execute(context.Background(), &models.Monitor{
		URL:            server.URL,
		Method:         http.MethodPost,
		Body:           `{"ping":true}`,
		ExpectedStatus: 2,
		Timeout:        5,
	})

	assert.Equal(t, models.StatusUp, outcome.Status)
	assert.Equal(t, `{"ping":true}`, gotBody)
}

func TestExecuteIgnoresBodyForGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 8)
		n, _ := r.Body.Read(buf)
		assert.Zero(t, n, "GET probes must not carry a body")

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chk := NewHTTPChecker()

	outcome := chk.Execute(context.Background(), &models.Monitor{
		URL:            server.URL,
		Body:           "ignored",
		ExpectedStatus: 2,
		Timeout:        5,
	})

	assert.Equal(t, models.StatusUp, outcome.Status)
}
