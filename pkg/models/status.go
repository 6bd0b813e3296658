package models

import "time"

// HeartbeatLength is the fixed size of the status-page history array.
// When fewer transitions exist the array is padded with "unknown".
const HeartbeatLength = 24

// StatusPageConfig selects which monitors and agents a status page
// shows, with the page branding.
type StatusPageConfig struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	CustomCSS   string    `json:"custom_css"`
	MonitorIDs  []int64   `json:"monitors"`
	AgentIDs    []int64   `json:"agents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MonitorView is a monitor enriched for display.
type MonitorView struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	Uptime       float64  `json:"uptime"`
	ResponseTime int64    `json:"response_time"`
	History      []string `json:"history"` // exactly HeartbeatLength entries, oldest first
}

// AgentView is an agent enriched with computed usage percentages.
type AgentView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	CPU       float64 `json:"cpu"`
	Memory    float64 `json:"memory"` // percent, 0 when total unknown
	Disk      float64 `json:"disk"`   // percent, 0 when total unknown
	NetworkRx uint64  `json:"network_rx"`
	NetworkTx uint64  `json:"network_tx"`
	Hostname  string  `json:"hostname"`
	IPAddress string  `json:"ip_address"`
	OS        string  `json:"os"`
	Version   string  `json:"version"`
}

// StatusPageView is the display-ready aggregation the public status
// page and dashboard consume.
type StatusPageView struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	LogoURL     string        `json:"logo_url"`
	CustomCSS   string        `json:"custom_css,omitempty"`
	Monitors    []MonitorView `json:"monitors"`
	Agents      []AgentView   `json:"agents"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// MetricPoint is a single response-time datapoint kept in the
// in-memory ring for sparkline rendering.
type MetricPoint struct {
	Timestamp    time.Time `json:"timestamp"`
	ResponseTime int64     `json:"response_time"`
	Status       string    `json:"status"`
}
