// Package db pkg/db/errors.go provides errors for the db package.

package db

import "errors"

var (
	// Lookup errors callers branch on.

	ErrMonitorNotFound = errors.New("monitor not found")
	ErrAgentNotFound   = errors.New("agent not found")
	ErrConfigNotFound  = errors.New("status page config not found")

	// Operation errors.

	ErrFailedToClean     = errors.New("failed to clean")
	ErrFailedToBeginTx   = errors.New("failed to begin transaction")
	ErrFailedToScan      = errors.New("failed to scan")
	ErrFailedToQuery     = errors.New("failed to query")
	ErrFailedToInsert    = errors.New("failed to insert")
	ErrFailedToUpdate    = errors.New("failed to update")
	ErrFailedToInit      = errors.New("failed to initialize schema")
	ErrFailedToEnableWAL = errors.New("failed to enable WAL mode")
	ErrFailedOpenDB      = errors.New("failed to open database")
)
