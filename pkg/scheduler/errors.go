package scheduler

import "errors"

var (
	// ErrCheckInFlight is returned by CheckNow when a probe of the same
	// monitor is already running.
	ErrCheckInFlight = errors.New("check already in flight for monitor")
)
