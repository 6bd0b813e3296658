// Package checker pkg/checker/interfaces.go

//go:generate mockgen -destination=mock_checker.go -package=checker github.com/statuskite/statuskite/pkg/checker Checker

package checker

import (
	"context"

	"github.com/statuskite/statuskite/pkg/models"
)

// Checker executes a single probe against a monitor's target.
type Checker interface {
	// Execute performs the probe and classifies the result. Network
	// failures are captured in the outcome, never returned as errors.
	Execute(ctx context.Context, monitor *models.Monitor) *models.CheckOutcome
}
