package agent

import (
	"context"
	"log"
	"time"
)

// Agent ties the collector and reporter together on a fixed cadence.
type Agent struct {
	collector Collector
	reporter  Reporter
	interval  time.Duration
}

func New(collector Collector, reporter Reporter, interval time.Duration) *Agent {
	return &Agent{
		collector: collector,
		reporter:  reporter,
		interval:  interval,
	}
}

// Run collects and reports until ctx is canceled. The first report
// fires immediately. Collection or delivery failures are logged and
// retried on the next tick.
func (a *Agent) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.collectAndReport(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.collectAndReport(ctx)
		}
	}
}

func (a *Agent) collectAndReport(ctx context.Context) {
	snapshot, err := a.collector.Collect(ctx)
	if err != nil {
		log.Printf("Error collecting snapshot: %v", err)
		return
	}

	if err := a.reporter.Report(ctx, snapshot); err != nil {
		log.Printf("Error reporting snapshot: %v", err)
		return
	}

	log.Printf("Reported snapshot: cpu=%.1f%% mem=%d/%d disk=%d/%d",
		snapshot.CPUUsage, snapshot.MemoryUsed, snapshot.MemoryTotal,
		snapshot.DiskUsed, snapshot.DiskTotal)
}
