package database

import (
	"database/sql"
	"fmt"
)

// schema creates the run history tables
const schema = `
CREATE TABLE IF NOT EXISTS scenario_runs (
	id UUID PRIMARY KEY,
	run_id UUID NOT NULL,
	scenario VARCHAR(100) NOT NULL,
	status VARCHAR(20) NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	started_at TIMESTAMP NOT NULL,
	finished_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scenario_runs_run_id ON scenario_runs(run_id);
CREATE INDEX IF NOT EXISTS idx_scenario_runs_started_at ON scenario_runs(started_at DESC);
`

// RunMigrations creates the necessary database tables
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create scenario_runs table: %w", err)
	}

	return nil
}
