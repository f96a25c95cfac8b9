package scenario

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/storecheck/storecheck/internal/config"
	"github.com/storecheck/storecheck/internal/models"
	"github.com/storecheck/storecheck/internal/services"
	"go.uber.org/zap"
)

// Result is the outcome of one scenario
type Result struct {
	Scenario string
	Err      error
	Duration time.Duration
}

// Passed reports whether the scenario succeeded
func (r Result) Passed() bool {
	return r.Err == nil
}

// Runner executes scenarios one after another, each in its own session
type Runner struct {
	sessions SessionFactory
	suite    *Suite
	recorder services.RunService
	logger   *zap.Logger
}

// Option customizes a Runner
type Option func(*Runner)

// WithRecorder records every scenario execution through the run service
func WithRecorder(recorder services.RunService) Option {
	return func(r *Runner) { r.recorder = recorder }
}

// WithLogger sets the logger used by the runner and its scenarios
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithExpectations replaces the literal expected values
func WithExpectations(expect Expectations) Option {
	return func(r *Runner) { r.suite.Expect = expect }
}

// WithSelectors replaces the storefront selectors
func WithSelectors(selectors Selectors) Option {
	return func(r *Runner) { r.suite.Selectors = selectors }
}

// WithIntn replaces the random index source
func WithIntn(intn func(int) int) Option {
	return func(r *Runner) { r.suite.Intn = intn }
}

// WithCartWait bounds the single-item cart wait
func WithCartWait(wait time.Duration) Option {
	return func(r *Runner) { r.suite.CartWait = wait }
}

// NewRunner reads the scenario settings and prepares a runner.
// Malformed settings abort here, before any browser is launched.
func NewRunner(sessions SessionFactory, settings *config.Settings, opts ...Option) (*Runner, error) {
	timeoutSeconds, err := settings.TimeoutSeconds()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	maxRetries, err := settings.MaxRetries()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	r := &Runner{
		sessions: sessions,
		suite: &Suite{
			BaseURL:   settings.BaseURL(),
			Timeout:   time.Duration(timeoutSeconds) * time.Second,
			Selectors: DefaultSelectors(),
			Expect:    DefaultExpectations(),
			Intn:      rand.Intn,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.suite.Logger = r.logger

	// TODO: decide whether MaxRetries should drive scenario retries; it is only reported for now.
	r.logger.Debug("Loaded settings",
		zap.String("baseUrl", r.suite.BaseURL),
		zap.Int("timeoutSeconds", timeoutSeconds),
		zap.Int("maxRetries", maxRetries))

	return r, nil
}

// Timeout is the configured per-step timeout
func (r *Runner) Timeout() time.Duration {
	return r.suite.Timeout
}

// Scenarios lists the scenarios this runner knows
func (r *Runner) Scenarios() []Scenario {
	return r.suite.Scenarios()
}

// Run executes the named scenarios in order, or all of them when names is empty.
// A failing scenario never stops the ones after it.
func (r *Runner) Run(ctx context.Context, names ...string) ([]Result, error) {
	selected, err := r.selectScenarios(names)
	if err != nil {
		return nil, err
	}

	runID := models.NewRunID()
	r.logger.Info("Starting run", zap.String("runId", runID), zap.Int("scenarios", len(selected)))

	results := make([]Result, 0, len(selected))
	for _, sc := range selected {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, r.runOne(ctx, runID, sc))
	}

	return results, nil
}

func (r *Runner) selectScenarios(names []string) ([]Scenario, error) {
	all := r.suite.Scenarios()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Scenario, len(all))
	for _, sc := range all {
		byName[sc.Name] = sc
	}

	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		sc, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
		}
		selected = append(selected, sc)
	}
	return selected, nil
}

func (r *Runner) runOne(ctx context.Context, runID string, sc Scenario) Result {
	log := r.logger.With(zap.String("scenario", sc.Name))
	started := time.Now()

	var record *models.ScenarioRun
	if r.recorder != nil {
		var err error
		if record, err = r.recorder.Start(runID, sc.Name); err != nil {
			log.Warn("Failed to record scenario start", zap.Error(err))
		}
	}

	err := r.execute(ctx, sc)
	result := Result{Scenario: sc.Name, Err: err, Duration: time.Since(started)}

	if err != nil {
		log.Error("Scenario failed", zap.Error(err), zap.Duration("duration", result.Duration))
	} else {
		log.Info("Scenario passed", zap.Duration("duration", result.Duration))
	}

	if record != nil {
		if err := r.recorder.Finish(record, result.Err); err != nil {
			log.Warn("Failed to record scenario result", zap.Error(err))
		}
	}

	return result
}

// execute runs sc in a fresh session that is closed whatever happens
func (r *Runner) execute(ctx context.Context, sc Scenario) (err error) {
	session, err := r.sessions.NewSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to open browser session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			r.logger.Warn("Failed to close browser session", zap.String("scenario", sc.Name), zap.Error(closeErr))
		}
	}()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("scenario panicked: %v", p)
		}
	}()

	return sc.Run(ctx, session.Page())
}
