// Package api pkg/api/types.go
package api

import (
	"context"

	"github.com/statuskite/statuskite/pkg/models"
)

// CheckTrigger schedules out-of-band probes. *scheduler.Runner
// satisfies it.
type CheckTrigger interface {
	CheckNow(ctx context.Context, monitor *models.Monitor) (*models.StatusTransition, error)
	RunTick(ctx context.Context) error
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

type registerResponse struct {
	Agent   *models.Agent `json:"agent"`
	Created bool          `json:"created"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type checkResponse struct {
	Monitor    *models.Monitor          `json:"monitor"`
	Transition *models.StatusTransition `json:"transition,omitempty"`
}
