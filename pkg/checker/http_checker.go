package checker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

const (
	defaultTimeout = 30 * time.Second
	defaultMethod  = http.MethodGet
)

var (
	errMissingURL = errors.New("monitor has no URL")
	errBadURL     = errors.New("monitor URL is not valid")
)

// HTTPChecker probes monitors over HTTP. It holds a single client; the
// per-monitor timeout is applied through the request context, so one
// slow target cannot stretch another monitor's bound.
type HTTPChecker struct {
	client *http.Client
}

func NewHTTPChecker() *HTTPChecker {
	return &HTTPChecker{
		client: &http.Client{
			// No client-level timeout; Execute sets the monitor's own
			// deadline on every request.
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// ValidateMonitor reports whether a monitor is well-formed enough to
// probe. The scheduler uses this to keep malformed definitions out of
// the due set instead of burning a check on them.
func ValidateMonitor(monitor *models.Monitor) error {
	if strings.TrimSpace(monitor.URL) == "" {
		return errMissingURL
	}

	u, err := url.Parse(monitor.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", errBadURL, monitor.URL)
	}

	return nil
}

// Execute performs one probe. The monitor's timeout is a hard upper
// bound; success requires both a response within that bound and a
// status code matching expected_status. All failures land in the
// outcome's Error field.
func (c *HTTPChecker) Execute(ctx context.Context, monitor *models.Monitor) *models.CheckOutcome {
	timeout := defaultTimeout
	if monitor.Timeout > 0 {
		timeout = time.Duration(monitor.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := c.buildRequest(ctx, monitor)
	if err != nil {
		return &models.CheckOutcome{
			Status: models.StatusDown,
			Error:  fmt.Sprintf("build request: %v", err),
		}
	}

	start := time.Now()

	resp, err := c.client.Do(req)

	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		return &models.CheckOutcome{
			Status: models.StatusDown,
			Error:  classifyError(err, timeout),
		}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	code := resp.StatusCode
	outcome := &models.CheckOutcome{
		ResponseTime: &elapsed,
		StatusCode:   &code,
	}

	if matchesExpected(code, monitor.ExpectedStatus) {
		outcome.Status = models.StatusUp
		return outcome
	}

	// Latency and the actual code stay meaningful on a mismatch; only
	// the classification flips.
	outcome.Status = models.StatusDown
	outcome.Error = fmt.Sprintf("unexpected status code: got %d, want %s",
		code, expectedStatusDisplay(monitor.ExpectedStatus))

	return outcome
}

func (c *HTTPChecker) buildRequest(ctx context.Context, monitor *models.Monitor) (*http.Request, error) {
	method := monitor.Method
	if method == "" {
		method = defaultMethod
	}

	var body *strings.Reader
	if monitor.Body != "" && method != http.MethodGet && method != http.MethodHead {
		body = strings.NewReader(monitor.Body)
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, monitor.URL, body)
	if err != nil {
		return nil, err
	}

	for key, value := range monitor.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// matchesExpected checks the status code against the expectation.
// Expected values 1 through 5 select a whole class: 2 matches any 2xx.
func matchesExpected(code, expected int) bool {
	if expected >= 1 && expected <= 5 {
		return code/100 == expected
	}

	return code == expected
}

func expectedStatusDisplay(expected int) string {
	if expected >= 1 && expected <= 5 {
		return fmt.Sprintf("%dxx", expected)
	}

	return fmt.Sprintf("%d", expected)
}

func classifyError(err error, timeout time.Duration) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("timeout after %s", timeout)
	}

	if errors.Is(err, context.Canceled) {
		return "check canceled"
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return fmt.Sprintf("timeout after %s", timeout)
		}

		return urlErr.Err.Error()
	}

	return err.Error()
}
