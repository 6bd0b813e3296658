// Package agents tracks push agents and their self-reported resource
// snapshots.
package agents

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/statuskite/statuskite/pkg/db"
	"github.com/statuskite/statuskite/pkg/models"
)

// Tracker handles agent registration and status reports. An agent is
// identified solely by its bearer token; reports with an unknown token
// are rejected, never auto-registered.
type Tracker struct {
	database db.Service
}

func NewTracker(database db.Service) *Tracker {
	return &Tracker{database: database}
}

// RecordReport stores the snapshot for the agent holding token and
// marks it active. Returns db.ErrAgentNotFound for unknown tokens.
func (t *Tracker) RecordReport(token string, snapshot *models.AgentSnapshot) (*models.Agent, error) {
	agent, err := t.database.GetAgentByToken(token)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if err := t.database.SaveAgentSnapshot(agent.ID, snapshot, now); err != nil {
		return nil, err
	}

	return t.database.GetAgent(agent.ID)
}

// Register creates an agent for token, or returns the existing one when
// the token is already registered. Registration is an upsert so an
// agent restarting with a persisted token never duplicates itself.
func (t *Tracker) Register(token, name string, ownerID int64) (*models.Agent, bool, error) {
	existing, err := t.database.GetAgentByToken(token)
	if err == nil {
		return existing, false, nil
	}

	if !errors.Is(err, db.ErrAgentNotFound) {
		return nil, false, err
	}

	agent := &models.Agent{
		Name:    name,
		Token:   token,
		OwnerID: ownerID,
		Status:  models.AgentInactive,
	}

	id, err := t.database.CreateAgent(agent)
	if err != nil {
		return nil, false, err
	}

	log.Printf("Registered agent %d (%s)", id, name)

	created, err := t.database.GetAgent(id)
	if err != nil {
		return nil, false, err
	}

	return created, true, nil
}

// RotateToken replaces the agent's token with a fresh random one and
// returns it. The old token stops working immediately.
func (t *Tracker) RotateToken(id int64) (string, error) {
	token := uuid.NewString()

	if err := t.database.UpdateAgentToken(id, token); err != nil {
		return "", err
	}

	log.Printf("Rotated token for agent %d", id)

	return token, nil
}

// NewToken generates a token for a freshly provisioned agent.
func NewToken() string {
	return uuid.NewString()
}
