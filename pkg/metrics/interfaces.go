package metrics

import (
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

//go:generate mockgen -destination=mock_metrics.go -package=metrics github.com/statuskite/statuskite/pkg/metrics MetricStore,MetricCollector

// MetricStore holds the bounded response-time history for one monitor.
type MetricStore interface {
	Add(timestamp time.Time, responseTime int64, status string)
	GetPoints() []models.MetricPoint
}

// MetricCollector tracks response-time points across monitors for the
// dashboard sparkline, without touching the ledger.
type MetricCollector interface {
	AddMetric(monitorID int64, timestamp time.Time, responseTime int64, status string)
	GetMetrics(monitorID int64) []models.MetricPoint
}
