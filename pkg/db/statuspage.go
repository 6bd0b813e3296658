package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

// GetStatusPageConfig loads the page config for an owner together with
// its monitor/agent selections. ErrConfigNotFound signals the explicit
// no-config branch that lets the aggregator synthesize a default.
func (db *DB) GetStatusPageConfig(ownerID int64) (*models.StatusPageConfig, error) {
	const querySQL = `
		SELECT id, owner_id, title, description, logo_url, custom_css,
			created_at, updated_at
		FROM status_page_config
		WHERE owner_id = ?
	`

	var cfg models.StatusPageConfig

	err := db.QueryRow(querySQL, ownerID).Scan(
		&cfg.ID, &cfg.OwnerID, &cfg.Title, &cfg.Description,
		&cfg.LogoURL, &cfg.CustomCSS, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w status page config: %w", ErrFailedToQuery, err)
	}

	if cfg.MonitorIDs, err = db.configLinks(
		"SELECT monitor_id FROM status_page_monitors WHERE config_id = ? ORDER BY monitor_id",
		cfg.ID); err != nil {
		return nil, err
	}

	if cfg.AgentIDs, err = db.configLinks(
		"SELECT agent_id FROM status_page_agents WHERE config_id = ? ORDER BY agent_id",
		cfg.ID); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (db *DB) configLinks(query string, configID int64) ([]int64, error) {
	rows, err := db.Query(query, configID) //nolint:rowserrcheck // rows.Close() is deferred
	if err != nil {
		return nil, fmt.Errorf("%w config links: %w", ErrFailedToQuery, err)
	}
	defer closeRows(rows)

	var ids []int64

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w link row: %w", ErrFailedToScan, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// SaveStatusPageConfig upserts the page config and replaces its
// selection links in one transaction.
func (db *DB) SaveStatusPageConfig(cfg *models.StatusPageConfig) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	defer func() {
		if err != nil {
			rollbackOnError(tx, err)
		}
	}()

	now := time.Now()

	// Callers typically decode a fresh struct with no id; the owner's
	// existing row must be updated, not duplicated.
	if cfg.ID == 0 {
		err = tx.QueryRow(
			"SELECT id FROM status_page_config WHERE owner_id = ?",
			cfg.OwnerID).Scan(&cfg.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w status page config: %w", ErrFailedToQuery, err)
		}

		err = nil
	}

	if cfg.ID == 0 {
		var result sql.Result

		result, err = tx.Exec(`
			INSERT INTO status_page_config
				(owner_id, title, description, logo_url, custom_css, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, cfg.OwnerID, cfg.Title, cfg.Description, cfg.LogoURL, cfg.CustomCSS, now, now)
		if err != nil {
			return fmt.Errorf("%w status page config: %w", ErrFailedToInsert, err)
		}

		if cfg.ID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("%w config id: %w", ErrFailedToInsert, err)
		}
	} else {
		_, err = tx.Exec(`
			UPDATE status_page_config
			SET title = ?, description = ?, logo_url = ?, custom_css = ?, updated_at = ?
			WHERE id = ?
		`, cfg.Title, cfg.Description, cfg.LogoURL, cfg.CustomCSS, now, cfg.ID)
		if err != nil {
			return fmt.Errorf("%w status page config: %w", ErrFailedToUpdate, err)
		}
	}

	if _, err = tx.Exec("DELETE FROM status_page_monitors WHERE config_id = ?", cfg.ID); err != nil {
		return fmt.Errorf("%w monitor links: %w", ErrFailedToUpdate, err)
	}

	if _, err = tx.Exec("DELETE FROM status_page_agents WHERE config_id = ?", cfg.ID); err != nil {
		return fmt.Errorf("%w agent links: %w", ErrFailedToUpdate, err)
	}

	for _, monitorID := range cfg.MonitorIDs {
		if _, err = tx.Exec(
			"INSERT INTO status_page_monitors (config_id, monitor_id) VALUES (?, ?)",
			cfg.ID, monitorID); err != nil {
			return fmt.Errorf("%w monitor link: %w", ErrFailedToInsert, err)
		}
	}

	for _, agentID := range cfg.AgentIDs {
		if _, err = tx.Exec(
			"INSERT INTO status_page_agents (config_id, agent_id) VALUES (?, ?)",
			cfg.ID, agentID); err != nil {
			return fmt.Errorf("%w agent link: %w", ErrFailedToInsert, err)
		}
	}

	return tx.Commit()
}
