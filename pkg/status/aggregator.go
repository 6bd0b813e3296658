// Package status assembles the display-ready status page view.
package status

import (
	"errors"
	"time"

	"github.com/statuskite/statuskite/pkg/db"
	"github.com/statuskite/statuskite/pkg/models"
)

const defaultTitle = "System Status"

// Aggregator builds StatusPageView values from ledger state. It holds
// no state of its own; every call reads the current database rows.
type Aggregator struct {
	database db.Service
}

func NewAggregator(database db.Service) *Aggregator {
	return &Aggregator{database: database}
}

// BuildView assembles the status page for ownerID. When no page config
// has been saved a default is synthesized: every active monitor, every
// agent, stock title. The resulting view is self-contained and safe to
// serialize.
func (a *Aggregator) BuildView(ownerID int64) (*models.StatusPageView, error) {
	cfg, err := a.database.GetStatusPageConfig(ownerID)
	if errors.Is(err, db.ErrConfigNotFound) {
		cfg = nil
	} else if err != nil {
		return nil, err
	}

	monitors, agents, err := a.selectEntities(ownerID, cfg)
	if err != nil {
		return nil, err
	}

	view := &models.StatusPageView{
		Title:       defaultTitle,
		Monitors:    make([]models.MonitorView, 0, len(monitors)),
		Agents:      make([]models.AgentView, 0, len(agents)),
		GeneratedAt: time.Now(),
	}

	if cfg != nil {
		if cfg.Title != "" {
			view.Title = cfg.Title
		}

		view.Description = cfg.Description
		view.LogoURL = cfg.LogoURL
		view.CustomCSS = cfg.CustomCSS
	}

	for i := range monitors {
		mv, err := a.monitorView(&monitors[i])
		if err != nil {
			return nil, err
		}

		view.Monitors = append(view.Monitors, *mv)
	}

	for i := range agents {
		view.Agents = append(view.Agents, agentView(&agents[i]))
	}

	return view, nil
}

func (a *Aggregator) selectEntities(ownerID int64, cfg *models.StatusPageConfig) ([]models.Monitor, []models.Agent, error) {
	if cfg == nil {
		monitors, err := a.database.ListActiveMonitors(ownerID)
		if err != nil {
			return nil, nil, err
		}

		agents, err := a.database.ListAgents()
		if err != nil {
			return nil, nil, err
		}

		return monitors, agents, nil
	}

	monitors, err := a.database.ListMonitorsByIDs(cfg.MonitorIDs)
	if err != nil {
		return nil, nil, err
	}

	agents, err := a.database.ListAgentsByIDs(cfg.AgentIDs)
	if err != nil {
		return nil, nil, err
	}

	return monitors, agents, nil
}

func (a *Aggregator) monitorView(m *models.Monitor) (*models.MonitorView, error) {
	transitions, err := a.database.RecentTransitions(m.ID, models.HeartbeatLength)
	if err != nil {
		return nil, err
	}

	return &models.MonitorView{
		ID:           m.ID,
		Name:         m.Name,
		Status:       m.Status,
		Uptime:       m.Uptime,
		ResponseTime: m.ResponseTime,
		History:      heartbeat(transitions),
	}, nil
}

// heartbeat flattens the newest-first transition list into a fixed
// oldest-first array of exactly HeartbeatLength entries, left-padded
// with "unknown" when history is short.
func heartbeat(transitions []models.StatusTransition) []string {
	history := make([]string, models.HeartbeatLength)

	for i := range history {
		history[i] = models.StatusUnknown
	}

	n := len(transitions)
	if n > models.HeartbeatLength {
		n = models.HeartbeatLength
	}

	// transitions[0] is the newest; it lands in the last slot.
	for i := 0; i < n; i++ {
		history[models.HeartbeatLength-1-i] = transitions[i].Status
	}

	return history
}

func agentView(agent *models.Agent) models.AgentView {
	return models.AgentView{
		ID:        agent.ID,
		Name:      agent.Name,
		Status:    agent.Status,
		CPU:       agent.CPUUsage,
		Memory:    percent(agent.MemoryUsed, agent.MemoryTotal),
		Disk:      percent(agent.DiskUsed, agent.DiskTotal),
		NetworkRx: agent.NetworkRx,
		NetworkTx: agent.NetworkTx,
		Hostname:  orUnknown(agent.Hostname),
		IPAddress: orUnknown(agent.IPAddress),
		OS:        orUnknown(agent.OS),
		Version:   orUnknown(agent.Version),
	}
}

// orUnknown substitutes a sentinel for text an agent never reported.
func orUnknown(s string) string {
	if s == "" {
		return models.StatusUnknown
	}

	return s
}

// percent guards against agents that have never reported totals.
func percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}

	return float64(used) / float64(total) * 100
}
