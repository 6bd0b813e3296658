package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/statuskite/statuskite/pkg/checker"
	"github.com/statuskite/statuskite/pkg/db"
	"github.com/statuskite/statuskite/pkg/models"
)

const (
	defaultWorkers   = 8
	defaultProbeRate = 50 // probes per second across all monitors
)

// Runner drives the check cycle: every tick it selects the due monitors
// and probes them on a bounded worker pool. A monitor whose previous
// probe is still running is skipped for the tick, so a slow target can
// never stack concurrent probes against itself.
type Runner struct {
	database db.Service
	checker  checker.Checker
	handler  OutcomeHandler
	limiter  *rate.Limiter
	workers  int

	mu       sync.Mutex
	inFlight map[int64]bool
}

// NewRunner creates a Runner probing with chk and handing outcomes to
// handler. workers bounds concurrent probes; <= 0 uses the default.
func NewRunner(database db.Service, chk checker.Checker, handler OutcomeHandler, workers int) *Runner {
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Runner{
		database: database,
		checker:  chk,
		handler:  handler,
		limiter:  rate.NewLimiter(rate.Limit(defaultProbeRate), defaultProbeRate),
		workers:  workers,
		inFlight: make(map[int64]bool),
	}
}

// Start runs check cycles until ctx is canceled. The first cycle fires
// immediately.
func (r *Runner) Start(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Starting scheduler with tick interval %v", interval)

	if err := r.RunTick(ctx); err != nil {
		log.Printf("Error during initial check cycle: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.RunTick(ctx); err != nil {
				log.Printf("Error during check cycle: %v", err)
			}
		}
	}
}

// RunTick executes one check cycle: load active monitors, select the
// due ones and probe them. Individual probe failures are recorded as
// outcomes, never returned; only a failure to load the monitor list is
// an error.
func (r *Runner) RunTick(ctx context.Context) error {
	monitors, err := r.database.ListMonitors()
	if err != nil {
		return err
	}

	due := SelectDue(monitors, time.Now())
	if len(due) == 0 {
		return nil
	}

	log.Printf("Check cycle: %d of %d monitors due", len(due), len(monitors))

	jobs := make(chan *models.Monitor)

	var wg sync.WaitGroup

	for i := 0; i < r.workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for m := range jobs {
				r.probe(ctx, m)
			}
		}()
	}

	for _, m := range due {
		if !r.tryAcquire(m.ID) {
			log.Printf("Monitor %d still in flight, skipping this cycle", m.ID)
			continue
		}

		select {
		case jobs <- m:
		case <-ctx.Done():
			r.release(m.ID)
		}
	}

	close(jobs)
	wg.Wait()

	return ctx.Err()
}

// CheckNow probes a single monitor outside the normal cycle, used by
// the manual trigger endpoints. It respects the in-flight guard.
func (r *Runner) CheckNow(ctx context.Context, monitor *models.Monitor) (*models.StatusTransition, error) {
	if err := checker.ValidateMonitor(monitor); err != nil {
		return nil, err
	}

	if !r.tryAcquire(monitor.ID) {
		return nil, ErrCheckInFlight
	}
	defer r.release(monitor.ID)

	outcome := r.checker.Execute(ctx, monitor)

	return r.handler.ApplyOutcome(ctx, monitor, outcome, time.Now())
}

func (r *Runner) probe(ctx context.Context, monitor *models.Monitor) {
	defer r.release(monitor.ID)

	if err := r.limiter.Wait(ctx); err != nil {
		return
	}

	outcome := r.checker.Execute(ctx, monitor)

	transition, err := r.handler.ApplyOutcome(ctx, monitor, outcome, time.Now())
	if err != nil {
		log.Printf("Error applying outcome for monitor %d (%s): %v",
			monitor.ID, monitor.Name, err)
		return
	}

	if transition != nil {
		log.Printf("Monitor %d (%s) transitioned to %s",
			monitor.ID, monitor.Name, transition.Status)
	}
}

func (r *Runner) tryAcquire(monitorID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inFlight[monitorID] {
		return false
	}

	r.inFlight[monitorID] = true

	return true
}

func (r *Runner) release(monitorID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.inFlight, monitorID)
}
