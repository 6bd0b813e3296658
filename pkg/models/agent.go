package models

import "time"

// Agent status values. Agents flip to active when they report; there is
// no background sweep marking silent agents inactive.
const (
	AgentActive   = "active"
	AgentInactive = "inactive"
)

// Agent is a registered push agent with its last-known resource
// snapshot denormalized onto the row. Snapshot fields are overwritten
// on every report, never appended.
type Agent struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Token       string    `json:"-"`
	OwnerID     int64     `json:"owner_id"`
	Status      string    `json:"status"`
	CPUUsage    float64   `json:"cpu_usage"`
	MemoryTotal uint64    `json:"memory_total"`
	MemoryUsed  uint64    `json:"memory_used"`
	DiskTotal   uint64    `json:"disk_total"`
	DiskUsed    uint64    `json:"disk_used"`
	NetworkRx   uint64    `json:"network_rx"`
	NetworkTx   uint64    `json:"network_tx"`
	Hostname    string    `json:"hostname,omitempty"`
	IPAddress   string    `json:"ip_address,omitempty"`
	OS          string    `json:"os,omitempty"`
	Version     string    `json:"version,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AgentSnapshot is the self-reported resource payload an agent pushes.
type AgentSnapshot struct {
	CPUUsage    float64 `json:"cpu_usage"`
	MemoryTotal uint64  `json:"memory_total"`
	MemoryUsed  uint64  `json:"memory_used"`
	DiskTotal   uint64  `json:"disk_total"`
	DiskUsed    uint64  `json:"disk_used"`
	NetworkRx   uint64  `json:"network_rx"`
	NetworkTx   uint64  `json:"network_tx"`
	Hostname    string  `json:"hostname,omitempty"`
	IPAddress   string  `json:"ip_address,omitempty"`
	OS          string  `json:"os,omitempty"`
	Version     string  `json:"version,omitempty"`
}
