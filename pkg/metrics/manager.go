package metrics

import (
	"sync"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

const defaultRetention = 100

// Manager keeps one ring buffer per monitor.
type Manager struct {
	monitors  sync.Map // monitorID -> *monitorMetrics
	retention int
}

type monitorMetrics struct {
	mu     sync.RWMutex
	buffer MetricStore
}

// NewManager creates a MetricCollector retaining up to retention points
// per monitor.
func NewManager(retention int) *Manager {
	if retention <= 0 {
		retention = defaultRetention
	}

	return &Manager{retention: retention}
}

// AddMetric records one response-time point for a monitor.
func (m *Manager) AddMetric(monitorID int64, timestamp time.Time, responseTime int64, status string) {
	entry, _ := m.monitors.LoadOrStore(monitorID, &monitorMetrics{
		buffer: NewBuffer(m.retention),
	})

	mm := entry.(*monitorMetrics)

	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.buffer.Add(timestamp, responseTime, status)
}

// GetMetrics returns the recorded points for a monitor, most recent
// first, or nil when the monitor has never been checked.
func (m *Manager) GetMetrics(monitorID int64) []models.MetricPoint {
	entry, ok := m.monitors.Load(monitorID)
	if !ok {
		return nil
	}

	mm := entry.(*monitorMetrics)

	mm.mu.RLock()
	defer mm.mu.RUnlock()

	return mm.buffer.GetPoints()
}
