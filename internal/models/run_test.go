package models

import (
	"errors"
	"testing"
)

func TestNewScenarioRun(t *testing.T) {
	tests := []struct {
		name     string
		runID    string
		scenario string
		wantErr  error
	}{
		{
			name:     "valid run",
			runID:    "run-1",
			scenario: "catalog-count",
			wantErr:  nil,
		},
		{
			name:     "empty run ID",
			runID:    "",
			scenario: "catalog-count",
			wantErr:  ErrInvalidRunID,
		},
		{
			name:     "empty scenario",
			runID:    "run-1",
			scenario: "",
			wantErr:  ErrInvalidScenarioName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := NewScenarioRun(tt.runID, tt.scenario)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("NewScenarioRun() error = %v, wantErr %v", err, tt.wantErr)
				}
				if run != nil {
					t.Error("Expected run to be nil when error occurs")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewScenarioRun() unexpected error = %v", err)
			}
			if run.ID == "" {
				t.Error("Run ID should not be empty")
			}
			if run.Status != RunStatusPending {
				t.Errorf("Expected status %s, got %s", RunStatusPending, run.Status)
			}
			if run.StartedAt.IsZero() {
				t.Error("StartedAt should be set")
			}
			if run.IsFinished() {
				t.Error("New run should not be finished")
			}
			if run.Duration() != 0 {
				t.Error("Pending run should have zero duration")
			}
		})
	}
}

func TestNewRunID_Unique(t *testing.T) {
	if NewRunID() == NewRunID() {
		t.Error("Expected distinct run IDs")
	}
}

func TestScenarioRun_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		initial    RunStatus
		pass       bool
		wantStatus RunStatus
		wantErr    bool
	}{
		{name: "pending to passed", initial: RunStatusPending, pass: true, wantStatus: RunStatusPassed},
		{name: "pending to failed", initial: RunStatusPending, pass: false, wantStatus: RunStatusFailed},
		{name: "passed cannot pass again", initial: RunStatusPassed, pass: true, wantStatus: RunStatusPassed, wantErr: true},
		{name: "passed cannot fail", initial: RunStatusPassed, pass: false, wantStatus: RunStatusPassed, wantErr: true},
		{name: "failed cannot pass", initial: RunStatusFailed, pass: true, wantStatus: RunStatusFailed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := NewScenarioRun("run-1", "add-to-cart")
			if err != nil {
				t.Fatal(err)
			}
			run.Status = tt.initial

			if tt.pass {
				err = run.Pass()
			} else {
				err = run.Fail("cart count: expected \"1\", got \"0\"")
			}

			if (err != nil) != tt.wantErr {
				t.Fatalf("transition error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidStatusTransition) {
				t.Errorf("Expected ErrInvalidStatusTransition, got %v", err)
			}
			if run.Status != tt.wantStatus {
				t.Errorf("Expected status %s, got %s", tt.wantStatus, run.Status)
			}
		})
	}
}

func TestScenarioRun_FailRecordsReason(t *testing.T) {
	run, _ := NewScenarioRun("run-1", "add-multiple-to-cart")

	if err := run.Fail("no matching elements"); err != nil {
		t.Fatal(err)
	}

	if run.Message != "no matching elements" {
		t.Errorf("Expected message to be recorded, got '%s'", run.Message)
	}
	if !run.IsFinished() {
		t.Error("Failed run should be finished")
	}
	if run.FinishedAt.Before(run.StartedAt) {
		t.Error("FinishedAt should not precede StartedAt")
	}
}
