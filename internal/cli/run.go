package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/storecheck/storecheck/internal/scenario"
)

// ErrScenariosFailed is returned when at least one scenario did not pass
var ErrScenariosFailed = errors.New("scenarios failed")

// ScenarioRunner runs scenarios by name
type ScenarioRunner interface {
	Run(ctx context.Context, names ...string) ([]scenario.Result, error)
}

// RunScenarios runs the named scenarios, or all of them, and prints one line
// per scenario followed by a summary.
func RunScenarios(ctx context.Context, runner ScenarioRunner, names []string, out io.Writer) error {
	results, err := runner.Run(ctx, names...)
	if err != nil {
		return fmt.Errorf("failed to run scenarios: %w", err)
	}

	failed := 0
	for _, result := range results {
		duration := result.Duration.Round(time.Millisecond)
		if result.Passed() {
			fmt.Fprintf(out, "PASS  %s (%s)\n", result.Scenario, duration)
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL  %s (%s)\n      %v\n", result.Scenario, duration, result.Err)
	}

	fmt.Fprintf(out, "\n%d scenarios, %d passed, %d failed\n", len(results), len(results)-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScenariosFailed, failed, len(results))
	}
	return nil
}
