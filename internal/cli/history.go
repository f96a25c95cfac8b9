package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/storecheck/storecheck/internal/models"
)

// DefaultHistoryLimit is how many runs history shows by default
const DefaultHistoryLimit = 20

// RunHistory returns recorded scenario runs
type RunHistory interface {
	Recent(limit int) ([]*models.ScenarioRun, error)
}

// ShowHistory prints the latest recorded scenario runs, newest first
func ShowHistory(history RunHistory, limit int, out io.Writer) error {
	runs, err := history.Recent(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tRUN\tSCENARIO\tSTATUS\tDURATION\tMESSAGE")
	for _, run := range runs {
		duration := "-"
		if run.IsFinished() {
			duration = run.Duration().Round(time.Millisecond).String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			run.StartedAt.Format(time.DateTime),
			shortID(run.RunID),
			run.Scenario,
			run.Status,
			duration,
			run.Message,
		)
	}
	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
