package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/statuskite/statuskite/pkg/db"
	"github.com/statuskite/statuskite/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDatabase = errors.New("database error")

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

type recordingListener struct {
	transitions []*models.StatusTransition
}

func (r *recordingListener) NotifyTransition(_ context.Context, _ *models.Monitor, tr *models.StatusTransition) {
	r.transitions = append(r.transitions, tr)
}

func TestApplyOutcomeFirstCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)

	now := time.Now()
	monitor := &models.Monitor{ID: 1, Name: "web", Status: models.StatusPending, Uptime: 100}
	outcome := &models.CheckOutcome{
		Status:       models.StatusUp,
		ResponseTime: int64Ptr(42),
		StatusCode:   intPtr(200),
	}

	mockDB.EXPECT().AddCheckResult(gomock.Any()).DoAndReturn(func(c *models.CheckResult) error {
		assert.Equal(t, int64(1), c.MonitorID)
		assert.Equal(t, models.StatusUp, c.Status)
		assert.Equal(t, int64(42), *c.ResponseTime)
		return nil
	})
	mockDB.EXPECT().AddStatusTransition(int64(1), models.StatusUp, now).Return(nil)
	mockDB.EXPECT().UptimeRatio(int64(1), defaultUptimeWindow, now).Return(100.0, nil)
	mockDB.EXPECT().UpdateMonitorCheckState(int64(1), models.StatusUp, 100.0, int64(42), now).Return(nil)

	listener := &recordingListener{}
	updater := NewUpdater(mockDB, nil)
	updater.AddListener(listener)

	transition, err := updater.ApplyOutcome(context.Background(), monitor, outcome, now)
	require.NoError(t, err)
	require.NotNil(t, transition, "first check leaves pending, so it is a transition")
	assert.Equal(t, models.StatusUp, transition.Status)

	assert.Equal(t, models.StatusUp, monitor.Status)
	assert.Equal(t, int64(42), monitor.ResponseTime)
	require.NotNil(t, monitor.LastChecked)
	assert.Equal(t, now, *monitor.LastChecked)

	require.Len(t, listener.transitions, 1)
}

func TestApplyOutcomeNoChangeRecordsNoTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)

	now := time.Now()
	monitor := &models.Monitor{ID: 1, Name: "web", Status: models.StatusUp}
	outcome := &models.CheckOutcome{
		Status:       models.StatusUp,
		ResponseTime: int64Ptr(18),
		StatusCode:   intPtr(204),
	}

	mockDB.EXPECT().AddCheckResult(gomock.Any()).Return(nil)
	mockDB.EXPECT().UptimeRatio(int64(1), defaultUptimeWindow, now).Return(99.5, nil)
	mockDB.EXPECT().UpdateMonitorCheckState(int64(1), models.StatusUp, 99.5, int64(18), now).Return(nil)

	listener := &recordingListener{}
	updater := NewUpdater(mockDB, nil)
	updater.AddListener(listener)

	transition, err := updater.ApplyOutcome(context.Background(), monitor, outcome, now)
	require.NoError(t, err)
	assert.Nil(t, transition)

	assert.InDelta(t, 99.5, monitor.Uptime, 0.001)
	assert.Empty(t, listener.transitions)
}

func TestApplyOutcomeDownTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)

	now := time.Now()
	monitor := &models.Monitor{ID: 3, Name: "api", Status: models.StatusUp, ResponseTime: 30}
	outcome := &models.CheckOutcome{
		Status: models.StatusDown,
		Error:  "timeout after 5s",
	}

	mockDB.EXPECT().AddCheckResult(gomock.Any()).DoAndReturn(func(c *models.CheckResult) error {
		assert.Nil(t, c.ResponseTime, "no response means no latency row")
		assert.Nil(t, c.StatusCode)
		assert.Equal(t, "timeout after 5s", c.Error)
		return nil
	})
	mockDB.EXPECT().AddStatusTransition(int64(3), models.StatusDown, now).Return(nil)
	mockDB.EXPECT().UptimeRatio(int64(3), defaultUptimeWindow, now).Return(75.0, nil)
	mockDB.EXPECT().UpdateMonitorCheckState(int64(3), models.StatusDown, 75.0, int64(0), now).Return(nil)

	updater := NewUpdater(mockDB, nil)

	transition, err := updater.ApplyOutcome(context.Background(), monitor, outcome, now)
	require.NoError(t, err)
	require.NotNil(t, transition)
	assert.Equal(t, models.StatusDown, transition.Status)
	assert.Equal(t, models.StatusDown, monitor.Status)
}

func TestApplyOutcomeCheckWriteFailureStopsEarly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)

	monitor := &models.Monitor{ID: 1, Status: models.StatusUp}
	outcome := &models.CheckOutcome{Status: models.StatusUp, ResponseTime: int64Ptr(10)}

	mockDB.EXPECT().AddCheckResult(gomock.Any()).Return(errDatabase)

	updater := NewUpdater(mockDB, nil)

	_, err := updater.ApplyOutcome(context.Background(), monitor, outcome, time.Now())
	assert.ErrorIs(t, err, errDatabase)

	assert.Equal(t, models.StatusUp, monitor.Status, "monitor untouched on failure")
}

func TestApplyOutcomeFeedsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)

	now := time.Now()
	monitor := &models.Monitor{ID: 9, Status: models.StatusUp}
	outcome := &models.CheckOutcome{
		Status:       models.StatusUp,
		ResponseTime: int64Ptr(55),
		StatusCode:   intPtr(200),
	}

	mockDB.EXPECT().AddCheckResult(gomock.Any()).Return(nil)
	mockDB.EXPECT().UptimeRatio(int64(9), defaultUptimeWindow, now).Return(100.0, nil)
	mockDB.EXPECT().UpdateMonitorCheckState(int64(9), models.StatusUp, 100.0, int64(55), now).Return(nil)

	collector := newRecordingCollector()

	updater := NewUpdater(mockDB, collector)

	_, err := updater.ApplyOutcome(context.Background(), monitor, outcome, now)
	require.NoError(t, err)

	points := collector.points[9]
	require.Len(t, points, 1)
	assert.Equal(t, int64(55), points[0].ResponseTime)
}

type recordingCollector struct {
	points map[int64][]models.MetricPoint
}

func newRecordingCollector() *recordingCollector {
	return &recordingCollector{points: make(map[int64][]models.MetricPoint)}
}

func (r *recordingCollector) AddMetric(monitorID int64, ts time.Time, responseTime int64, status string) {
	r.points[monitorID] = append(r.points[monitorID], models.MetricPoint{
		Timestamp:    ts,
		ResponseTime: responseTime,
		Status:       status,
	})
}

func (r *recordingCollector) GetMetrics(monitorID int64) []models.MetricPoint {
	return r.points[monitorID]
}
