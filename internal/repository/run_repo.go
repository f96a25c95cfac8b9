package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/storecheck/storecheck/internal/models"
)

// ErrRunNotFound is returned when no scenario run matches the given ID
var ErrRunNotFound = errors.New("scenario run not found")

// RunRepository handles database operations for scenario runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository on the given connection
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

// CreateRun inserts a new scenario run
func (r *RunRepository) CreateRun(run *models.ScenarioRun) error {
	query := `
		INSERT INTO scenario_runs (id, run_id, scenario, status, message, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.RunID,
		run.Scenario,
		run.Status,
		run.Message,
		run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create scenario run: %w", err)
	}

	return nil
}

// FinishRun stores the final status, message and finish time of a run
func (r *RunRepository) FinishRun(run *models.ScenarioRun) error {
	query := `
		UPDATE scenario_runs
		SET status = $1, message = $2, finished_at = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(query, run.Status, run.Message, run.FinishedAt, run.ID)
	if err != nil {
		return fmt.Errorf("failed to finish scenario run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrRunNotFound
	}

	return nil
}

// GetRun retrieves a scenario run by ID
func (r *RunRepository) GetRun(id string) (*models.ScenarioRun, error) {
	query := `
		SELECT id, run_id, scenario, status, message, started_at, finished_at
		FROM scenario_runs
		WHERE id = $1
	`

	run, err := scanRun(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario run: %w", err)
	}

	return run, nil
}

// ListRecent returns the most recently started runs, newest first
func (r *RunRepository) ListRecent(limit int) ([]*models.ScenarioRun, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `
		SELECT id, run_id, scenario, status, message, started_at, finished_at
		FROM scenario_runs
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ScenarioRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenario run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scenario runs: %w", err)
	}

	return runs, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.ScenarioRun, error) {
	run := &models.ScenarioRun{}
	var finishedAt sql.NullTime

	err := row.Scan(
		&run.ID,
		&run.RunID,
		&run.Scenario,
		&run.Status,
		&run.Message,
		&run.StartedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	}
	return run, nil
}
