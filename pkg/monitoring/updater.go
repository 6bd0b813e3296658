// Package monitoring turns probe outcomes into persistent monitor state.
package monitoring

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/statuskite/statuskite/pkg/db"
	"github.com/statuskite/statuskite/pkg/metrics"
	"github.com/statuskite/statuskite/pkg/models"
)

const defaultUptimeWindow = 24 * time.Hour

// TransitionListener is notified after a monitor changes status. The
// webhook alerter and the websocket hub both hang off this.
type TransitionListener interface {
	NotifyTransition(ctx context.Context, monitor *models.Monitor, transition *models.StatusTransition)
}

// Updater applies probe outcomes: it appends the check row, records a
// transition when the status changed, recomputes the windowed uptime
// and overwrites the denormalized cache on the monitor row. Outcomes
// for the same monitor are serialized so concurrent probes cannot
// interleave their ledger writes.
type Updater struct {
	database     db.Service
	collector    metrics.MetricCollector
	listeners    []TransitionListener
	uptimeWindow time.Duration

	locks sync.Map // monitorID -> *sync.Mutex
}

// NewUpdater creates an Updater. collector may be nil when in-memory
// response-time tracking is disabled.
func NewUpdater(database db.Service, collector metrics.MetricCollector) *Updater {
	return &Updater{
		database:     database,
		collector:    collector,
		uptimeWindow: defaultUptimeWindow,
	}
}

// AddListener registers a transition listener. Not safe to call once
// outcomes are flowing.
func (u *Updater) AddListener(l TransitionListener) {
	u.listeners = append(u.listeners, l)
}

// ApplyOutcome persists one probe outcome and returns the resulting
// transition, or nil when the status did not change.
func (u *Updater) ApplyOutcome(ctx context.Context, monitor *models.Monitor, outcome *models.CheckOutcome, checkedAt time.Time) (*models.StatusTransition, error) {
	mu := u.lockFor(monitor.ID)
	mu.Lock()
	defer mu.Unlock()

	check := &models.CheckResult{
		MonitorID:    monitor.ID,
		Status:       outcome.Status,
		ResponseTime: outcome.ResponseTime,
		StatusCode:   outcome.StatusCode,
		Error:        outcome.Error,
		CheckedAt:    checkedAt,
	}

	if err := u.database.AddCheckResult(check); err != nil {
		return nil, err
	}

	var transition *models.StatusTransition

	if outcome.Status != monitor.Status {
		if err := u.database.AddStatusTransition(monitor.ID, outcome.Status, checkedAt); err != nil {
			return nil, err
		}

		transition = &models.StatusTransition{
			MonitorID: monitor.ID,
			Status:    outcome.Status,
			Timestamp: checkedAt,
		}
	}

	uptime, err := u.database.UptimeRatio(monitor.ID, u.uptimeWindow, checkedAt)
	if err != nil {
		return nil, err
	}

	var responseTime int64
	if outcome.ResponseTime != nil {
		responseTime = *outcome.ResponseTime
	}

	if err := u.database.UpdateMonitorCheckState(
		monitor.ID, outcome.Status, uptime, responseTime, checkedAt); err != nil {
		return nil, err
	}

	monitor.Status = outcome.Status
	monitor.Uptime = uptime
	monitor.ResponseTime = responseTime
	monitor.LastChecked = &checkedAt

	if u.collector != nil {
		u.collector.AddMetric(monitor.ID, checkedAt, responseTime, outcome.Status)
	}

	if transition != nil {
		log.Printf("Monitor %d (%s) changed status to %s",
			monitor.ID, monitor.Name, transition.Status)

		for _, l := range u.listeners {
			l.NotifyTransition(ctx, monitor, transition)
		}
	}

	return transition, nil
}

func (u *Updater) lockFor(monitorID int64) *sync.Mutex {
	mu, _ := u.locks.LoadOrStore(monitorID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
