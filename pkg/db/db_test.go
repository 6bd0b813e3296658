package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	service, err := New(filepath.Join(t.TempDir(), "statuskite.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, service.Close())
	})

	return service.(*DB)
}

func seedUser(t *testing.T, db *DB) int64 {
	t.Helper()

	result, err := db.Exec("INSERT INTO users (username) VALUES ('admin')")
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	return id
}

func seedMonitor(t *testing.T, db *DB, ownerID int64, name string, active bool) int64 {
	t.Helper()

	result, err := db.Exec(`
		INSERT INTO monitors (name, url, owner_id, active)
		VALUES (?, ?, ?, ?)
	`, name, "http://"+name+".example.com", ownerID, active)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	return id
}

func TestMonitorQueries(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)

	webID := seedMonitor(t, db, owner, "web", true)
	apiID := seedMonitor(t, db, owner, "api", false)

	t.Run("list all", func(t *testing.T) {
		monitors, err := db.ListMonitors()
		require.NoError(t, err)
		assert.Len(t, monitors, 2)
	})

	t.Run("list active filters inactive", func(t *testing.T) {
		monitors, err := db.ListActiveMonitors(owner)
		require.NoError(t, err)
		require.Len(t, monitors, 1)
		assert.Equal(t, webID, monitors[0].ID)
	})

	t.Run("list by ids", func(t *testing.T) {
		monitors, err := db.ListMonitorsByIDs([]int64{apiID})
		require.NoError(t, err)
		require.Len(t, monitors, 1)
		assert.Equal(t, "api", monitors[0].Name)

		monitors, err = db.ListMonitorsByIDs(nil)
		require.NoError(t, err)
		assert.Nil(t, monitors)
	})

	t.Run("get defaults", func(t *testing.T) {
		m, err := db.GetMonitor(webID)
		require.NoError(t, err)

		assert.Equal(t, "GET", m.Method)
		assert.Equal(t, 60, m.Interval)
		assert.Equal(t, models.StatusPending, m.Status)
		assert.InDelta(t, 100.0, m.Uptime, 0.001)
		assert.Nil(t, m.LastChecked)
		assert.Empty(t, m.Headers)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := db.GetMonitor(9999)
		assert.ErrorIs(t, err, ErrMonitorNotFound)
	})

	t.Run("update check state", func(t *testing.T) {
		checkedAt := time.Now().UTC().Truncate(time.Second)

		require.NoError(t, db.UpdateMonitorCheckState(webID, models.StatusUp, 99.5, 42, checkedAt))

		m, err := db.GetMonitor(webID)
		require.NoError(t, err)

		assert.Equal(t, models.StatusUp, m.Status)
		assert.InDelta(t, 99.5, m.Uptime, 0.001)
		assert.Equal(t, int64(42), m.ResponseTime)
		require.NotNil(t, m.LastChecked)
		assert.True(t, m.LastChecked.Equal(checkedAt))
	})

	t.Run("update missing monitor", func(t *testing.T) {
		err := db.UpdateMonitorCheckState(9999, models.StatusUp, 100, 1, time.Now())
		assert.ErrorIs(t, err, ErrMonitorNotFound)
	})
}

func TestScanMonitorBadHeaders(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)

	result, err := db.Exec(`
		INSERT INTO monitors (name, url, headers, owner_id)
		VALUES ('web', 'http://example.com', 'not json', ?)
	`, owner)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	m, err := db.GetMonitor(id)
	require.NoError(t, err)
	assert.Empty(t, m.Headers, "bad headers degrade to empty map")
}

func TestCheckLedger(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)
	monitorID := seedMonitor(t, db, owner, "web", true)

	now := time.Now().UTC().Truncate(time.Second)

	addCheck := func(status string, respTime *int64, code *int, at time.Time) {
		t.Helper()

		require.NoError(t, db.AddCheckResult(&models.CheckResult{
			MonitorID:    monitorID,
			Status:       status,
			ResponseTime: respTime,
			StatusCode:   code,
			CheckedAt:    at,
		}))
	}

	rt := int64(42)
	code := 200

	addCheck(models.StatusUp, &rt, &code, now.Add(-3*time.Minute))
	addCheck(models.StatusUp, &rt, &code, now.Add(-2*time.Minute))
	addCheck(models.StatusDown, nil, nil, now.Add(-time.Minute))

	t.Run("recent checks newest first", func(t *testing.T) {
		checks, err := db.RecentChecks(monitorID, 2)
		require.NoError(t, err)
		require.Len(t, checks, 2)

		assert.Equal(t, models.StatusDown, checks[0].Status)
		assert.Nil(t, checks[0].ResponseTime)
		assert.Nil(t, checks[0].StatusCode)

		assert.Equal(t, models.StatusUp, checks[1].Status)
		require.NotNil(t, checks[1].ResponseTime)
		assert.Equal(t, int64(42), *checks[1].ResponseTime)
	})

	t.Run("uptime ratio in window", func(t *testing.T) {
		ratio, err := db.UptimeRatio(monitorID, time.Hour, now)
		require.NoError(t, err)
		assert.InDelta(t, 200.0/3.0, ratio, 0.001)
	})

	t.Run("uptime ratio excludes old checks", func(t *testing.T) {
		// Only the down check falls inside a 90 second window.
		ratio, err := db.UptimeRatio(monitorID, 90*time.Second, now)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, ratio, 0.001)
	})

	t.Run("uptime ratio with no checks is 100", func(t *testing.T) {
		other := seedMonitor(t, db, owner, "api", true)

		ratio, err := db.UptimeRatio(other, time.Hour, now)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, ratio, 0.001)
	})
}

func TestStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)
	monitorID := seedMonitor(t, db, owner, "web", true)

	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, db.AddStatusTransition(monitorID, models.StatusUp, now.Add(-2*time.Minute)))
	require.NoError(t, db.AddStatusTransition(monitorID, models.StatusDown, now.Add(-time.Minute)))
	require.NoError(t, db.AddStatusTransition(monitorID, models.StatusUp, now))

	transitions, err := db.RecentTransitions(monitorID, 2)
	require.NoError(t, err)
	require.Len(t, transitions, 2)

	assert.Equal(t, models.StatusUp, transitions[0].Status)
	assert.Equal(t, models.StatusDown, transitions[1].Status)
	assert.Equal(t, monitorID, transitions[0].MonitorID)
}

func TestAgents(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)

	agentID, err := db.CreateAgent(&models.Agent{
		Name:    "worker-1",
		Token:   "tok-1",
		OwnerID: owner,
		Status:  models.AgentInactive,
	})
	require.NoError(t, err)

	t.Run("get by token", func(t *testing.T) {
		agent, err := db.GetAgentByToken("tok-1")
		require.NoError(t, err)
		assert.Equal(t, agentID, agent.ID)
		assert.Equal(t, models.AgentInactive, agent.Status)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := db.GetAgentByToken("nope")
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("save snapshot marks active and overwrites", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)

		require.NoError(t, db.SaveAgentSnapshot(agentID, &models.AgentSnapshot{
			CPUUsage:    33.5,
			MemoryTotal: 2000,
			MemoryUsed:  500,
			DiskTotal:   9000,
			DiskUsed:    4500,
			NetworkRx:   10,
			NetworkTx:   20,
			Hostname:    "host-a",
			IPAddress:   "10.0.0.5",
			OS:          "linux",
			Version:     "debian 12",
		}, now))

		agent, err := db.GetAgent(agentID)
		require.NoError(t, err)

		assert.Equal(t, models.AgentActive, agent.Status)
		assert.InDelta(t, 33.5, agent.CPUUsage, 0.001)
		assert.Equal(t, uint64(2000), agent.MemoryTotal)
		assert.Equal(t, "host-a", agent.Hostname)

		// Empty text fields keep the previous values.
		require.NoError(t, db.SaveAgentSnapshot(agentID, &models.AgentSnapshot{
			CPUUsage: 12.0,
		}, now.Add(time.Minute)))

		agent, err = db.GetAgent(agentID)
		require.NoError(t, err)
		assert.InDelta(t, 12.0, agent.CPUUsage, 0.001)
		assert.Equal(t, "host-a", agent.Hostname)
		assert.Equal(t, "linux", agent.OS)
	})

	t.Run("snapshot for missing agent", func(t *testing.T) {
		err := db.SaveAgentSnapshot(9999, &models.AgentSnapshot{}, time.Now())
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("rotate token", func(t *testing.T) {
		require.NoError(t, db.UpdateAgentToken(agentID, "tok-2"))

		_, err := db.GetAgentByToken("tok-1")
		assert.ErrorIs(t, err, ErrAgentNotFound)

		agent, err := db.GetAgentByToken("tok-2")
		require.NoError(t, err)
		assert.Equal(t, agentID, agent.ID)
	})

	t.Run("list by ids", func(t *testing.T) {
		list, err := db.ListAgentsByIDs([]int64{agentID})
		require.NoError(t, err)
		assert.Len(t, list, 1)

		list, err = db.ListAgentsByIDs(nil)
		require.NoError(t, err)
		assert.Nil(t, list)
	})
}

func TestStatusPageConfig(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)
	webID := seedMonitor(t, db, owner, "web", true)
	apiID := seedMonitor(t, db, owner, "api", true)

	agentID, err := db.CreateAgent(&models.Agent{Name: "worker-1", Token: "tok-1", OwnerID: owner})
	require.NoError(t, err)

	t.Run("missing config", func(t *testing.T) {
		_, err := db.GetStatusPageConfig(owner)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		cfg := &models.StatusPageConfig{
			OwnerID:     owner,
			Title:       "Acme Status",
			Description: "All services",
			MonitorIDs:  []int64{webID, apiID},
			AgentIDs:    []int64{agentID},
		}

		require.NoError(t, db.SaveStatusPageConfig(cfg))

		loaded, err := db.GetStatusPageConfig(owner)
		require.NoError(t, err)

		assert.Equal(t, "Acme Status", loaded.Title)
		assert.ElementsMatch(t, []int64{webID, apiID}, loaded.MonitorIDs)
		assert.Equal(t, []int64{agentID}, loaded.AgentIDs)
	})

	t.Run("save again replaces links", func(t *testing.T) {
		cfg := &models.StatusPageConfig{
			OwnerID:    owner,
			Title:      "Acme Status v2",
			MonitorIDs: []int64{apiID},
		}

		require.NoError(t, db.SaveStatusPageConfig(cfg))

		loaded, err := db.GetStatusPageConfig(owner)
		require.NoError(t, err)

		assert.Equal(t, "Acme Status v2", loaded.Title)
		assert.Equal(t, []int64{apiID}, loaded.MonitorIDs)
		assert.Empty(t, loaded.AgentIDs)
	})

	t.Run("re-save keeps one row per owner", func(t *testing.T) {
		require.NoError(t, db.SaveStatusPageConfig(&models.StatusPageConfig{
			OwnerID: owner,
			Title:   "Acme Status v3",
		}))

		var count int
		require.NoError(t, db.QueryRow(
			"SELECT COUNT(*) FROM status_page_config WHERE owner_id = ?",
			owner).Scan(&count))
		assert.Equal(t, 1, count)

		loaded, err := db.GetStatusPageConfig(owner)
		require.NoError(t, err)
		assert.Equal(t, "Acme Status v3", loaded.Title)
	})
}

func TestCleanOldData(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)
	monitorID := seedMonitor(t, db, owner, "web", true)

	now := time.Now().UTC()

	require.NoError(t, db.AddCheckResult(&models.CheckResult{
		MonitorID: monitorID,
		Status:    models.StatusUp,
		CheckedAt: now.Add(-48 * time.Hour),
	}))
	require.NoError(t, db.AddCheckResult(&models.CheckResult{
		MonitorID: monitorID,
		Status:    models.StatusUp,
		CheckedAt: now,
	}))
	require.NoError(t, db.AddStatusTransition(monitorID, models.StatusUp, now.Add(-48*time.Hour)))

	require.NoError(t, db.CleanOldData(24*time.Hour))

	checks, err := db.RecentChecks(monitorID, 10)
	require.NoError(t, err)
	assert.Len(t, checks, 1)

	transitions, err := db.RecentTransitions(monitorID, 10)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}
