package scheduler

//go:generate mockgen -destination=mock_scheduler.go -package=scheduler github.com/statuskite/statuskite/pkg/scheduler OutcomeHandler

import (
	"context"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

// OutcomeHandler consumes the result of a single probe.
type OutcomeHandler interface {
	ApplyOutcome(ctx context.Context, monitor *models.Monitor, outcome *models.CheckOutcome, checkedAt time.Time) (*models.StatusTransition, error)
}
