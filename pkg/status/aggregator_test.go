package status

import (
	"testing"
	"time"

	"github.com/statuskite/statuskite/pkg/db"
	"github.com/statuskite/statuskite/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildViewWithSavedConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)

	cfg := &models.StatusPageConfig{
		ID:          1,
		OwnerID:     1,
		Title:       "Acme Status",
		Description: "All Acme services",
		MonitorIDs:  []int64{1, 2},
		AgentIDs:    []int64{5},
	}

	mockDB.EXPECT().GetStatusPageConfig(int64(1)).Return(cfg, nil)
	mockDB.EXPECT().ListMonitorsByIDs([]int64{1, 2}).Return([]models.Monitor{
		{ID: 1, Name: "web", Status: models.StatusUp, Uptime: 99.9, ResponseTime: 42},
		{ID: 2, Name: "api", Status: models.StatusDown, Uptime: 80.0},
	}, nil)
	mockDB.EXPECT().ListAgentsByIDs([]int64{5}).Return([]models.Agent{
		{
			ID:          5,
			Name:        "worker-1",
			Status:      models.AgentActive,
			CPUUsage:    25.0,
			MemoryTotal: 1000,
			MemoryUsed:  250,
			DiskTotal:   2000,
			DiskUsed:    1000,
		},
	}, nil)
	mockDB.EXPECT().RecentTransitions(int64(1), models.HeartbeatLength).Return([]models.StatusTransition{
		{MonitorID: 1, Status: models.StatusUp, Timestamp: time.Now()},
	}, nil)
	mockDB.EXPECT().RecentTransitions(int64(2), models.HeartbeatLength).Return(nil, nil)

	agg := NewAggregator(mockDB)

	view, err := agg.BuildView(1)
	require.NoError(t, err)

	assert.Equal(t, "Acme Status", view.Title)
	assert.Equal(t, "All Acme services", view.Description)
	require.Len(t, view.Monitors, 2)
	require.Len(t, view.Agents, 1)

	web := view.Monitors[0]
	assert.Equal(t, models.StatusUp, web.Status)
	require.Len(t, web.History, models.HeartbeatLength)
	assert.Equal(t, models.StatusUp, web.History[models.HeartbeatLength-1])
	assert.Equal(t, models.StatusUnknown, web.History[0])

	worker := view.Agents[0]
	assert.InDelta(t, 25.0, worker.Memory, 0.001)
	assert.InDelta(t, 50.0, worker.Disk, 0.001)
}

func TestBuildViewSynthesizesDefaultConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)

	mockDB.EXPECT().GetStatusPageConfig(int64(1)).Return(nil, db.ErrConfigNotFound)
	mockDB.EXPECT().ListActiveMonitors(int64(1)).Return([]models.Monitor{
		{ID: 3, Name: "web", Status: models.StatusPending},
	}, nil)
	mockDB.EXPECT().ListAgents().Return(nil, nil)
	mockDB.EXPECT().RecentTransitions(int64(3), models.HeartbeatLength).Return(nil, nil)

	agg := NewAggregator(mockDB)

	view, err := agg.BuildView(1)
	require.NoError(t, err)

	assert.Equal(t, "System Status", view.Title)
	require.Len(t, view.Monitors, 1)
	assert.Empty(t, view.Agents)

	for _, slot := range view.Monitors[0].History {
		assert.Equal(t, models.StatusUnknown, slot)
	}
}

func TestHeartbeatTruncatesLongHistory(t *testing.T) {
	transitions := make([]models.StatusTransition, 0, 40)
	for i := 0; i < 40; i++ {
		status := models.StatusUp
		if i%2 == 1 {
			status = models.StatusDown
		}

		transitions = append(transitions, models.StatusTransition{Status: status})
	}

	history := heartbeat(transitions)

	require.Len(t, history, models.HeartbeatLength)
	// transitions[0] is newest and must land last.
	assert.Equal(t, models.StatusUp, history[models.HeartbeatLength-1])
	assert.Equal(t, models.StatusDown, history[models.HeartbeatLength-2])
	// No unknown padding once history is full.
	for _, slot := range history {
		assert.NotEqual(t, models.StatusUnknown, slot)
	}
}

func TestPercentGuardsZeroTotal(t *testing.T) {
	assert.Zero(t, percent(500, 0))
	assert.InDelta(t, 50.0, percent(1, 2), 0.001)
}

func TestAgentViewDefaultsMissingText(t *testing.T) {
	reported := agentView(&models.Agent{
		ID:       7,
		Name:     "worker-2",
		Status:   models.AgentActive,
		Hostname: "node-7",
		OS:       "linux",
	})

	assert.Equal(t, "node-7", reported.Hostname)
	assert.Equal(t, "linux", reported.OS)
	assert.Equal(t, models.StatusUnknown, reported.IPAddress)
	assert.Equal(t, models.StatusUnknown, reported.Version)

	bare := agentView(&models.Agent{ID: 8, Name: "worker-3", Status: models.AgentInactive})

	assert.Equal(t, models.StatusUnknown, bare.Hostname)
	assert.Equal(t, models.StatusUnknown, bare.IPAddress)
	assert.Equal(t, models.StatusUnknown, bare.OS)
	assert.Equal(t, models.StatusUnknown, bare.Version)
}

func TestBuildViewEmptyTitleFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)

	cfg := &models.StatusPageConfig{ID: 1, OwnerID: 1, Title: ""}

	mockDB.EXPECT().GetStatusPageConfig(int64(1)).Return(cfg, nil)
	mockDB.EXPECT().ListMonitorsByIDs(gomock.Nil()).Return(nil, nil)
	mockDB.EXPECT().ListAgentsByIDs(gomock.Nil()).Return(nil, nil)

	agg := NewAggregator(mockDB)

	view, err := agg.BuildView(1)
	require.NoError(t, err)
	assert.Equal(t, "System Status", view.Title)
}
