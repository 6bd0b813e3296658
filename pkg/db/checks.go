package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

// AddCheckResult appends one probe outcome to the ledger.
func (db *DB) AddCheckResult(check *models.CheckResult) error {
	const insertSQL = `
		INSERT INTO monitor_checks
			(monitor_id, status, response_time, status_code, error, checked_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var (
		respTime sql.NullInt64
		code     sql.NullInt64
	)

	if check.ResponseTime != nil {
		respTime = sql.NullInt64{Int64: *check.ResponseTime, Valid: true}
	}

	if check.StatusCode != nil {
		code = sql.NullInt64{Int64: int64(*check.StatusCode), Valid: true}
	}

	_, err := db.Exec(insertSQL,
		check.MonitorID,
		check.Status,
		respTime,
		code,
		check.Error,
		check.CheckedAt)

	if err != nil {
		return fmt.Errorf("%w check result: %w", ErrFailedToInsert, err)
	}

	return nil
}

// RecentChecks retrieves the latest check rows, most recent first.
func (db *DB) RecentChecks(monitorID int64, limit int) ([]models.CheckResult, error) {
	const querySQL = `
		SELECT id, status, response_time, status_code, error, checked_at
		FROM monitor_checks
		WHERE monitor_id = ?
		ORDER BY checked_at DESC
		LIMIT ?
	`

	rows, err := db.Query(querySQL, monitorID, limit) //nolint:rowserrcheck // rows.Close() is deferred
	if err != nil {
		return nil, fmt.Errorf("%w recent checks: %w", ErrFailedToQuery, err)
	}
	defer closeRows(rows)

	var checks []models.CheckResult

	for rows.Next() {
		var (
			c        models.CheckResult
			respTime sql.NullInt64
			code     sql.NullInt64
			errText  sql.NullString
		)

		c.MonitorID = monitorID

		if err := rows.Scan(&c.ID, &c.Status, &respTime, &code, &errText, &c.CheckedAt); err != nil {
			return nil, fmt.Errorf("%w check row: %w", ErrFailedToScan, err)
		}

		if respTime.Valid {
			v := respTime.Int64
			c.ResponseTime = &v
		}

		if code.Valid {
			v := int(code.Int64)
			c.StatusCode = &v
		}

		if errText.Valid {
			c.Error = errText.String
		}

		checks = append(checks, c)
	}

	return checks, nil
}

// UptimeRatio computes the percentage of checks within the window that
// were classified up. Zero checks in window means 100: a brand-new
// monitor shows optimistic uptime rather than 0%.
func (db *DB) UptimeRatio(monitorID int64, window time.Duration, now time.Time) (float64, error) {
	const querySQL = `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'up' THEN 1 ELSE 0 END), 0)
		FROM monitor_checks
		WHERE monitor_id = ? AND checked_at >= ?
	`

	var total, up int64

	cutoff := now.Add(-window)

	if err := db.QueryRow(querySQL, monitorID, cutoff).Scan(&total, &up); err != nil {
		return 0, fmt.Errorf("%w uptime ratio: %w", ErrFailedToQuery, err)
	}

	if total == 0 {
		return 100.0, nil
	}

	return float64(up) / float64(total) * 100.0, nil
}

// AddStatusTransition appends one state-change event. Callers are
// responsible for only invoking this when the status actually changed.
func (db *DB) AddStatusTransition(monitorID int64, status string, timestamp time.Time) error {
	const insertSQL = `
		INSERT INTO monitor_status_history (monitor_id, status, timestamp)
		VALUES (?, ?, ?)
	`

	if _, err := db.Exec(insertSQL, monitorID, status, timestamp); err != nil {
		return fmt.Errorf("%w status transition: %w", ErrFailedToInsert, err)
	}

	return nil
}

// RecentTransitions retrieves the latest transition events, most recent
// first. The aggregator pads the remainder of its fixed-length array
// when fewer rows exist.
func (db *DB) RecentTransitions(monitorID int64, limit int) ([]models.StatusTransition, error) {
	const querySQL = `
		SELECT id, status, timestamp
		FROM monitor_status_history
		WHERE monitor_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := db.Query(querySQL, monitorID, limit) //nolint:rowserrcheck // rows.Close() is deferred
	if err != nil {
		return nil, fmt.Errorf("%w recent transitions: %w", ErrFailedToQuery, err)
	}
	defer closeRows(rows)

	var transitions []models.StatusTransition

	for rows.Next() {
		var t models.StatusTransition

		t.MonitorID = monitorID

		if err := rows.Scan(&t.ID, &t.Status, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("%w transition row: %w", ErrFailedToScan, err)
		}

		transitions = append(transitions, t)
	}

	return transitions, nil
}
