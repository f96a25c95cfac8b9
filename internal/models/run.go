package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents valid scenario run states
type RunStatus string

// Run statuses
const (
	RunStatusPending RunStatus = "pending"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
)

// ScenarioRun records one execution of one scenario
type ScenarioRun struct {
	ID         string
	RunID      string
	Scenario   string
	Status     RunStatus
	Message    string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Domain errors
var (
	ErrInvalidRunID            = errors.New("run ID cannot be empty")
	ErrInvalidScenarioName     = errors.New("scenario name cannot be empty")
	ErrInvalidStatusTransition = errors.New("invalid run status transition")
)

// NewRunID returns an identifier grouping the scenario runs of one invocation
func NewRunID() string {
	return uuid.New().String()
}

// NewScenarioRun creates a pending scenario run
func NewScenarioRun(runID, scenario string) (*ScenarioRun, error) {
	if runID == "" {
		return nil, ErrInvalidRunID
	}
	if scenario == "" {
		return nil, ErrInvalidScenarioName
	}

	return &ScenarioRun{
		ID:        uuid.New().String(),
		RunID:     runID,
		Scenario:  scenario,
		Status:    RunStatusPending,
		StartedAt: time.Now(),
	}, nil
}

// Pass marks the run as passed
func (r *ScenarioRun) Pass() error {
	if r.Status != RunStatusPending {
		return fmt.Errorf("%w: cannot pass run with status %s", ErrInvalidStatusTransition, r.Status)
	}

	r.Status = RunStatusPassed
	r.FinishedAt = time.Now()
	return nil
}

// Fail marks the run as failed with the reason
func (r *ScenarioRun) Fail(reason string) error {
	if r.Status != RunStatusPending {
		return fmt.Errorf("%w: cannot fail run with status %s", ErrInvalidStatusTransition, r.Status)
	}

	r.Status = RunStatusFailed
	r.Message = reason
	r.FinishedAt = time.Now()
	return nil
}

// IsFinished returns true once the run has passed or failed
func (r *ScenarioRun) IsFinished() bool {
	return r.Status == RunStatusPassed || r.Status == RunStatusFailed
}

// Duration returns how long the run took, or zero while it is pending
func (r *ScenarioRun) Duration() time.Duration {
	if !r.IsFinished() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
