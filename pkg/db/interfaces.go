// Package db pkg/db/interfaces.go
package db

import (
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/statuskite/statuskite/pkg/db Service

// Service represents all database operations.
type Service interface {
	Close() error

	// Monitor operations.

	ListMonitors() ([]models.Monitor, error)
	ListActiveMonitors(ownerID int64) ([]models.Monitor, error)
	ListMonitorsByIDs(ids []int64) ([]models.Monitor, error)
	GetMonitor(id int64) (*models.Monitor, error)
	UpdateMonitorCheckState(id int64, status string, uptime float64, responseTime int64, checkedAt time.Time) error

	// Check ledger operations. Check rows are append-only; transition
	// rows exist only where the status changed.

	AddCheckResult(check *models.CheckResult) error
	RecentChecks(monitorID int64, limit int) ([]models.CheckResult, error)
	UptimeRatio(monitorID int64, window time.Duration, now time.Time) (float64, error)
	AddStatusTransition(monitorID int64, status string, timestamp time.Time) error
	RecentTransitions(monitorID int64, limit int) ([]models.StatusTransition, error)

	// Agent operations.

	ListAgents() ([]models.Agent, error)
	ListAgentsByIDs(ids []int64) ([]models.Agent, error)
	GetAgent(id int64) (*models.Agent, error)
	GetAgentByToken(token string) (*models.Agent, error)
	CreateAgent(agent *models.Agent) (int64, error)
	SaveAgentSnapshot(id int64, snapshot *models.AgentSnapshot, updatedAt time.Time) error
	UpdateAgentToken(id int64, token string) error

	// Status page operations.

	GetStatusPageConfig(ownerID int64) (*models.StatusPageConfig, error)
	SaveStatusPageConfig(cfg *models.StatusPageConfig) error

	// Maintenance operations.

	CleanOldData(retentionPeriod time.Duration) error
}
