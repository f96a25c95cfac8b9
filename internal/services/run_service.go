package services

import (
	"fmt"

	"github.com/storecheck/storecheck/internal/models"
)

// RunRepository defines the interface for scenario run persistence
type RunRepository interface {
	CreateRun(run *models.ScenarioRun) error
	FinishRun(run *models.ScenarioRun) error
	ListRecent(limit int) ([]*models.ScenarioRun, error)
}

// RunService records scenario executions
type RunService interface {
	Start(runID, scenario string) (*models.ScenarioRun, error)
	Finish(run *models.ScenarioRun, failure error) error
	Recent(limit int) ([]*models.ScenarioRun, error)
}

// RunServiceImpl implements RunService
type RunServiceImpl struct {
	runRepo RunRepository
}

// NewRunService creates a new run service
func NewRunService(runRepo RunRepository) RunService {
	return &RunServiceImpl{
		runRepo: runRepo,
	}
}

// Start creates and persists a pending scenario run
func (s *RunServiceImpl) Start(runID, scenario string) (*models.ScenarioRun, error) {
	run, err := models.NewScenarioRun(runID, scenario)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario run: %w", err)
	}

	if err := s.runRepo.CreateRun(run); err != nil {
		return nil, fmt.Errorf("failed to record scenario start: %w", err)
	}

	return run, nil
}

// Finish marks the run passed when failure is nil, failed otherwise, and persists it
func (s *RunServiceImpl) Finish(run *models.ScenarioRun, failure error) error {
	var err error
	if failure == nil {
		err = run.Pass()
	} else {
		err = run.Fail(failure.Error())
	}
	if err != nil {
		return err
	}

	if err := s.runRepo.FinishRun(run); err != nil {
		return fmt.Errorf("failed to record scenario result: %w", err)
	}

	return nil
}

// Recent returns the latest recorded runs
func (s *RunServiceImpl) Recent(limit int) ([]*models.ScenarioRun, error) {
	runs, err := s.runRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load run history: %w", err)
	}
	return runs, nil
}
