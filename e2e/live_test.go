//go:build acceptance
// +build acceptance

package e2e

import (
	"context"
	"os"
	"testing"

	"github.com/storecheck/storecheck/internal/config"
	"github.com/storecheck/storecheck/internal/scenario"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestLiveStorefront runs every scenario against the public storefront.
// Settings come from Config/appsettings.json or STORECHECK_* variables.
func TestLiveStorefront(t *testing.T) {
	path := os.Getenv("STORECHECK_CONFIG")
	if path == "" {
		path = "../" + config.DefaultSettingsPath
	}
	settings, err := config.LoadSettings(path)
	require.NoError(t, err, "failed to load settings")

	runner, err := scenario.NewRunner(launcher, settings, scenario.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err, "failed to create runner")
	launcher.SetDefaultTimeout(runner.Timeout())
	defer launcher.SetDefaultTimeout(0)

	results, err := runner.Run(context.Background())
	require.NoError(t, err)

	for _, result := range results {
		t.Run(result.Scenario, func(t *testing.T) {
			require.NoError(t, result.Err)
		})
	}
}
