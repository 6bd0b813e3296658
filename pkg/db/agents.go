package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/statuskite/statuskite/pkg/models"
)

const agentColumns = `id, name, token, owner_id, status, cpu_usage,
	memory_total, memory_used, disk_total, disk_used, network_rx,
	network_tx, hostname, ip_address, os, version, created_at, updated_at`

func scanAgent(row interface{ Scan(...interface{}) error }) (*models.Agent, error) {
	var (
		a                         models.Agent
		hostname, ip, osName, ver sql.NullString
	)

	err := row.Scan(
		&a.ID, &a.Name, &a.Token, &a.OwnerID, &a.Status, &a.CPUUsage,
		&a.MemoryTotal, &a.MemoryUsed, &a.DiskTotal, &a.DiskUsed,
		&a.NetworkRx, &a.NetworkTx, &hostname, &ip, &osName, &ver,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Hostname = hostname.String
	a.IPAddress = ip.String
	a.OS = osName.String
	a.Version = ver.String

	return &a, nil
}

func (db *DB) queryAgents(query string, args ...interface{}) ([]models.Agent, error) {
	rows, err := db.Query(query, args...) //nolint:rowserrcheck // rows.Close() is deferred
	if err != nil {
		return nil, fmt.Errorf("%w agents: %w", ErrFailedToQuery, err)
	}
	defer closeRows(rows)

	var agents []models.Agent

	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w agent row: %w", ErrFailedToScan, err)
		}

		agents = append(agents, *a)
	}

	return agents, nil
}

func (db *DB) ListAgents() ([]models.Agent, error) {
	return db.queryAgents(fmt.Sprintf(
		"SELECT %s FROM agents ORDER BY id", agentColumns))
}

func (db *DB) ListAgentsByIDs(ids []int64) ([]models.Agent, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids))

	for _, id := range ids {
		args = append(args, id)
	}

	return db.queryAgents(fmt.Sprintf(
		"SELECT %s FROM agents WHERE id IN (%s) ORDER BY id",
		agentColumns, placeholders), args...)
}

func (db *DB) GetAgent(id int64) (*models.Agent, error) {
	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM agents WHERE id = ?", agentColumns), id)

	a, err := scanAgent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w agent: %w", ErrFailedToQuery, err)
	}

	return a, nil
}

// GetAgentByToken resolves a self-reporting agent by its bearer token.
// Unknown tokens return ErrAgentNotFound; rows are never created here.
func (db *DB) GetAgentByToken(token string) (*models.Agent, error) {
	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM agents WHERE token = ?", agentColumns), token)

	a, err := scanAgent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w agent by token: %w", ErrFailedToQuery, err)
	}

	return a, nil
}

func (db *DB) CreateAgent(agent *models.Agent) (int64, error) {
	const insertSQL = `
		INSERT INTO agents
			(name, token, owner_id, status, hostname, ip_address, os, version,
			 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()

	status := agent.Status
	if status == "" {
		status = models.AgentInactive
	}

	result, err := db.Exec(insertSQL,
		agent.Name, agent.Token, agent.OwnerID, status,
		agent.Hostname, agent.IPAddress, agent.OS, agent.Version,
		now, now)
	if err != nil {
		return 0, fmt.Errorf("%w agent: %w", ErrFailedToInsert, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w agent id: %w", ErrFailedToInsert, err)
	}

	return id, nil
}

// SaveAgentSnapshot overwrites the agent row with the pushed resource
// snapshot and marks the agent active. Reports are overwrite-only; no
// per-agent history is retained.
func (db *DB) SaveAgentSnapshot(id int64, snapshot *models.AgentSnapshot, updatedAt time.Time) error {
	const updateSQL = `
		UPDATE agents
		SET status = ?,
			cpu_usage = ?,
			memory_total = ?,
			memory_used = ?,
			disk_total = ?,
			disk_used = ?,
			network_rx = ?,
			network_tx = ?,
			hostname = COALESCE(NULLIF(?, ''), hostname),
			ip_address = COALESCE(NULLIF(?, ''), ip_address),
			os = COALESCE(NULLIF(?, ''), os),
			version = COALESCE(NULLIF(?, ''), version),
			updated_at = ?
		WHERE id = ?
	`

	result, err := db.Exec(updateSQL,
		models.AgentActive,
		snapshot.CPUUsage,
		snapshot.MemoryTotal, snapshot.MemoryUsed,
		snapshot.DiskTotal, snapshot.DiskUsed,
		snapshot.NetworkRx, snapshot.NetworkTx,
		snapshot.Hostname, snapshot.IPAddress, snapshot.OS, snapshot.Version,
		updatedAt, id)
	if err != nil {
		return fmt.Errorf("%w agent snapshot: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w agent snapshot: %w", ErrFailedToUpdate, err)
	}

	if rowsAffected == 0 {
		return ErrAgentNotFound
	}

	return nil
}

func (db *DB) UpdateAgentToken(id int64, token string) error {
	result, err := db.Exec(
		"UPDATE agents SET token = ?, updated_at = ? WHERE id = ?",
		token, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w agent token: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w agent token: %w", ErrFailedToUpdate, err)
	}

	if rowsAffected == 0 {
		return ErrAgentNotFound
	}

	return nil
}
