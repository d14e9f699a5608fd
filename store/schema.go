package store

import (
	"context"
	"database/sql"
)

const (
	datasetsTable     = "datasets"
	examplesTable     = "examples"
	sweepRunsTable    = "sweep_runs"
	sweepResultsTable = "sweep_results"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS datasets (
    name       TEXT PRIMARY KEY,
    features   TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS examples (
    dataset  TEXT NOT NULL,
    seq      INTEGER NOT NULL,
    features BLOB NOT NULL,
    label    INTEGER NOT NULL,
    PRIMARY KEY(dataset, seq)
);`,
	`CREATE TABLE IF NOT EXISTS sweep_runs (
    run_id     TEXT PRIMARY KEY,
    reference  TEXT NOT NULL,
    evaluation TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS sweep_results (
    run_id TEXT NOT NULL,
    k      INTEGER NOT NULL,
    error  REAL NOT NULL,
    PRIMARY KEY(run_id, k)
);`,
}

// EnsureSchema creates the store tables if they do not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
