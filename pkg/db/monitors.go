package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

const monitorColumns = `id, name, url, method, interval, timeout, expected_status,
	headers, body, owner_id, active, status, uptime, response_time,
	last_checked, created_at, updated_at`

func scanMonitor(row interface{ Scan(...interface{}) error }) (*models.Monitor, error) {
	var (
		m           models.Monitor
		headers     string
		body        sql.NullString
		lastChecked sql.NullTime
	)

	err := row.Scan(
		&m.ID, &m.Name, &m.URL, &m.Method, &m.Interval, &m.Timeout,
		&m.ExpectedStatus, &headers, &body, &m.OwnerID, &m.Active,
		&m.Status, &m.Uptime, &m.ResponseTime, &lastChecked,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Bad headers JSON degrades to an empty map rather than failing
	// the whole read.
	if err := json.Unmarshal([]byte(headers), &m.Headers); err != nil {
		m.Headers = map[string]string{}
	}

	if body.Valid {
		m.Body = body.String
	}

	if lastChecked.Valid {
		t := lastChecked.Time
		m.LastChecked = &t
	}

	return &m, nil
}

func (db *DB) queryMonitors(query string, args ...interface{}) ([]models.Monitor, error) {
	rows, err := db.Query(query, args...) //nolint:rowserrcheck // rows.Close() is deferred
	if err != nil {
		return nil, fmt.Errorf("%w monitors: %w", ErrFailedToQuery, err)
	}
	defer closeRows(rows)

	var monitors []models.Monitor

	for rows.Next() {
		m, err := scanMonitor(rows)
		if err != nil {
			return nil, fmt.Errorf("%w monitor row: %w", ErrFailedToScan, err)
		}

		monitors = append(monitors, *m)
	}

	return monitors, nil
}

// ListMonitors returns every monitor regardless of active flag; the
// due-scheduler does its own filtering.
func (db *DB) ListMonitors() ([]models.Monitor, error) {
	return db.queryMonitors(fmt.Sprintf(
		"SELECT %s FROM monitors ORDER BY id", monitorColumns))
}

// ListActiveMonitors returns the active monitors owned by ownerID.
func (db *DB) ListActiveMonitors(ownerID int64) ([]models.Monitor, error) {
	return db.queryMonitors(fmt.Sprintf(
		"SELECT %s FROM monitors WHERE owner_id = ? AND active = 1 ORDER BY id",
		monitorColumns), ownerID)
}

// ListMonitorsByIDs returns the monitors matching ids, preserving no
// particular order beyond ascending id.
func (db *DB) ListMonitorsByIDs(ids []int64) ([]models.Monitor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids))

	for _, id := range ids {
		args = append(args, id)
	}

	return db.queryMonitors(fmt.Sprintf(
		"SELECT %s FROM monitors WHERE id IN (%s) ORDER BY id",
		monitorColumns, placeholders), args...)
}

func (db *DB) GetMonitor(id int64) (*models.Monitor, error) {
	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM monitors WHERE id = ?", monitorColumns), id)

	m, err := scanMonitor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMonitorNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w monitor: %w", ErrFailedToQuery, err)
	}

	return m, nil
}

// UpdateMonitorCheckState overwrites the denormalized check-state cache
// on the monitor row. Only the state updater calls this.
func (db *DB) UpdateMonitorCheckState(id int64, status string, uptime float64, responseTime int64, checkedAt time.Time) error {
	result, err := db.Exec(`
		UPDATE monitors
		SET status = ?,
			uptime = ?,
			response_time = ?,
			last_checked = ?,
			updated_at = ?
		WHERE id = ?
	`, status, uptime, responseTime, checkedAt, checkedAt, id)
	if err != nil {
		return fmt.Errorf("%w monitor state: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w monitor state: %w", ErrFailedToUpdate, err)
	}

	if rowsAffected == 0 {
		return ErrMonitorNotFound
	}

	return nil
}
