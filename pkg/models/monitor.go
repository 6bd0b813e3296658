// Package models pkg/models/monitor.go contains the shared row and wire types.
package models

import "time"

// Monitor status values. A monitor stays "pending" until its first check.
const (
	StatusPending = "pending"
	StatusUp      = "up"
	StatusDown    = "down"
	StatusUnknown = "unknown"
)

// Monitor is a single HTTP probe target.
type Monitor struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	URL            string            `json:"url"`
	Method         string            `json:"method"`
	Interval       int               `json:"interval"` // seconds between checks
	Timeout        int               `json:"timeout"`  // seconds, hard probe bound
	ExpectedStatus int               `json:"expected_status"`
	Headers        map[string]string `json:"headers"`
	Body           string            `json:"body,omitempty"`
	OwnerID        int64             `json:"owner_id"`
	Active         bool              `json:"active"`
	Status         string            `json:"status"`
	Uptime         float64           `json:"uptime"`
	ResponseTime   int64             `json:"response_time"` // ms, last successful measurement
	LastChecked    *time.Time        `json:"last_checked,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CheckOutcome is the classified result of a single probe. It is a pure
// value: network failures are captured in Error, never raised.
type CheckOutcome struct {
	Status       string `json:"status"`        // up or down
	ResponseTime *int64 `json:"response_time"` // ms; nil when no response arrived
	StatusCode   *int   `json:"status_code"`   // nil on connection-level failure
	Error        string `json:"error,omitempty"`
}

// Up reports whether the outcome was classified as a success.
func (o *CheckOutcome) Up() bool {
	return o.Status == StatusUp
}

// CheckResult is one persisted probe outcome (monitor_checks row).
// Rows are append-only and never mutated.
type CheckResult struct {
	ID           int64     `json:"id"`
	MonitorID    int64     `json:"monitor_id"`
	Status       string    `json:"status"`
	ResponseTime *int64    `json:"response_time"`
	StatusCode   *int      `json:"status_code"`
	Error        string    `json:"error,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`
}

// StatusTransition is one state-change event (monitor_status_history
// row). A row exists only where the newly computed status differed from
// the previous one, which is what the compact heartbeat display reads.
type StatusTransition struct {
	ID        int64     `json:"id"`
	MonitorID int64     `json:"monitor_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
