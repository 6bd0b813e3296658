package scheduler

import (
	"time"

	"github.com/statuskite/statuskite/pkg/checker"
	"github.com/statuskite/statuskite/pkg/models"
)

// SelectDue filters monitors down to the ones whose interval has
// elapsed. Monitors that have never been checked are always due.
// Inactive monitors and monitors with an unusable URL are skipped.
func SelectDue(monitors []models.Monitor, now time.Time) []*models.Monitor {
	due := make([]*models.Monitor, 0, len(monitors))

	for i := range monitors {
		m := &monitors[i]

		if !m.Active {
			continue
		}

		if err := checker.ValidateMonitor(m); err != nil {
			continue
		}

		if m.LastChecked == nil {
			due = append(due, m)
			continue
		}

		interval := time.Duration(m.Interval) * time.Second
		if now.Sub(*m.LastChecked) >= interval {
			due = append(due, m)
		}
	}

	return due
}
