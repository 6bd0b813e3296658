// Package db pkg/db/db.go provides SQLite persistence for StatusKite.
package db

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// SQL statements for database initialization.
	createTablesSQL = `
	-- Owners of monitors and agents. Account management happens
	-- elsewhere; this table only anchors the foreign keys.
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Probe targets with their denormalized current state. status,
	-- uptime, response_time and last_checked are a cache rewritten
	-- only by the state updater.
	CREATE TABLE IF NOT EXISTS monitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		url TEXT NOT NULL,
		method TEXT NOT NULL DEFAULT 'GET',
		interval INTEGER NOT NULL DEFAULT 60,
		timeout INTEGER NOT NULL DEFAULT 30,
		expected_status INTEGER NOT NULL DEFAULT 200,
		headers TEXT NOT NULL DEFAULT '{}',
		body TEXT,
		owner_id INTEGER NOT NULL,
		active BOOLEAN NOT NULL DEFAULT 1,
		status TEXT NOT NULL DEFAULT 'pending',
		uptime REAL NOT NULL DEFAULT 100.0,
		response_time INTEGER NOT NULL DEFAULT 0,
		last_checked TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (owner_id) REFERENCES users(id)
	);

	-- One row per executed probe, append-only.
	CREATE TABLE IF NOT EXISTS monitor_checks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		monitor_id INTEGER NOT NULL,
		status TEXT NOT NULL,
		response_time INTEGER,
		status_code INTEGER,
		error TEXT,
		checked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (monitor_id) REFERENCES monitors(id) ON DELETE CASCADE
	);

	-- One row per status change, not per check.
	CREATE TABLE IF NOT EXISTS monitor_status_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		monitor_id INTEGER NOT NULL,
		status TEXT NOT NULL,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (monitor_id) REFERENCES monitors(id) ON DELETE CASCADE
	);

	-- Push agents with their last-known resource snapshot overwritten
	-- in place on each report.
	CREATE TABLE IF NOT EXISTS agents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		token TEXT NOT NULL UNIQUE,
		owner_id INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'inactive',
		cpu_usage REAL NOT NULL DEFAULT 0,
		memory_total INTEGER NOT NULL DEFAULT 0,
		memory_used INTEGER NOT NULL DEFAULT 0,
		disk_total INTEGER NOT NULL DEFAULT 0,
		disk_used INTEGER NOT NULL DEFAULT 0,
		network_rx INTEGER NOT NULL DEFAULT 0,
		network_tx INTEGER NOT NULL DEFAULT 0,
		hostname TEXT,
		ip_address TEXT,
		os TEXT,
		version TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (owner_id) REFERENCES users(id)
	);

	-- Status page branding plus selection link tables.
	CREATE TABLE IF NOT EXISTS status_page_config (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		owner_id INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT 'System Status',
		description TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT '',
		custom_css TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (owner_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS status_page_monitors (
		config_id INTEGER NOT NULL,
		monitor_id INTEGER NOT NULL,
		PRIMARY KEY (config_id, monitor_id),
		FOREIGN KEY (config_id) REFERENCES status_page_config(id) ON DELETE CASCADE,
		FOREIGN KEY (monitor_id) REFERENCES monitors(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS status_page_agents (
		config_id INTEGER NOT NULL,
		agent_id INTEGER NOT NULL,
		PRIMARY KEY (config_id, agent_id),
		FOREIGN KEY (config_id) REFERENCES status_page_config(id) ON DELETE CASCADE,
		FOREIGN KEY (agent_id) REFERENCES agents(id) ON DELETE CASCADE
	);

	-- Indexes for better query performance
	CREATE INDEX IF NOT EXISTS idx_monitor_checks_monitor_time
		ON monitor_checks(monitor_id, checked_at);
	CREATE INDEX IF NOT EXISTS idx_monitor_status_history_monitor_time
		ON monitor_status_history(monitor_id, timestamp);
	CREATE INDEX IF NOT EXISTS idx_monitors_owner
		ON monitors(owner_id);

	-- Enable WAL mode for better concurrent access
	PRAGMA journal_mode=WAL;
	PRAGMA foreign_keys=ON;
	`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// New creates a new database connection and initializes the schema.
func New(dbPath string) (Service, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToEnableWAL, err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return db, nil
}

// initSchema creates the database tables if they don't exist.
func (db *DB) initSchema() error {
	_, err := db.Exec(createTablesSQL)

	return err
}

func rollbackOnError(tx *sql.Tx, err error) {
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("Error rolling back transaction: %v", rbErr)
		}
	}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("failed to close rows: %v", err)
	}
}

// CleanOldData removes ledger rows older than the retention period.
// Monitor and agent rows are untouched; only the bounded history is
// swept.
func (db *DB) CleanOldData(retentionPeriod time.Duration) error {
	cutoff := time.Now().Add(-retentionPeriod)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("failed to rollback: %v", rbErr)
			}

			return
		}

		err = tx.Commit()
	}()

	if _, err = tx.Exec(
		"DELETE FROM monitor_checks WHERE checked_at < ?",
		cutoff,
	); err != nil {
		return fmt.Errorf("%w monitor checks: %w", ErrFailedToClean, err)
	}

	if _, err = tx.Exec(
		"DELETE FROM monitor_status_history WHERE timestamp < ?",
		cutoff,
	); err != nil {
		return fmt.Errorf("%w status history: %w", ErrFailedToClean, err)
	}

	return nil
}
