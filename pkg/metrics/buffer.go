package metrics

import (
	"sync/atomic"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

// metricPoint represents a single datapoint in the ring.
type metricPoint struct {
	timestamp    int64
	responseTime int64
	status       string
}

// RingBuffer is a fixed-size buffer of the most recent response-time
// points. Writes rotate through the slice using an atomic position
// counter; readers reconstruct newest-first order from it.
type RingBuffer struct {
	points []metricPoint
	pos    int64 // Atomic position counter
	size   int64
}

// NewBuffer creates a MetricStore with the given capacity.
func NewBuffer(size int) MetricStore {
	return &RingBuffer{
		points: make([]metricPoint, size),
		size:   int64(size),
	}
}

// Add records a new point, overwriting the oldest once full.
func (b *RingBuffer) Add(timestamp time.Time, responseTime int64, status string) {
	pos := atomic.AddInt64(&b.pos, 1) - 1
	idx := pos % b.size

	b.points[idx] = metricPoint{
		timestamp:    timestamp.UnixNano(),
		responseTime: responseTime,
		status:       status,
	}
}

// GetPoints retrieves the recorded points, most recent first. Slots
// never written are skipped, so a fresh buffer returns a short slice
// rather than zero-valued placeholders.
func (b *RingBuffer) GetPoints() []models.MetricPoint {
	pos := atomic.LoadInt64(&b.pos)

	count := b.size
	if pos < count {
		count = pos
	}

	points := make([]models.MetricPoint, 0, count)

	for i := int64(0); i < count; i++ {
		idx := (pos - i - 1 + b.size) % b.size
		p := b.points[idx]

		points = append(points, models.MetricPoint{
			Timestamp:    time.Unix(0, p.timestamp),
			ResponseTime: p.responseTime,
			Status:       p.status,
		})
	}

	return points
}
