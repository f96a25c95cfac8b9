package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// BrowserConfig holds settings for launching scenario browsers
type BrowserConfig struct {
	Engine   string
	Headless bool
	SlowMo   float64 // milliseconds between driver operations
}

// LoadBrowserConfig loads browser configuration from environment variables
func LoadBrowserConfig(getenv func(string) string) (BrowserConfig, error) {
	config := BrowserConfig{
		Engine:   strings.ToLower(getenv("BROWSER")),
		Headless: getenv("HEADLESS") != "false",
	}

	if config.Engine == "" {
		config.Engine = BrowserChromium
	}
	switch config.Engine {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return BrowserConfig{}, fmt.Errorf("unsupported BROWSER %q", config.Engine)
	}

	if raw := getenv("SLOW_MO_MS"); raw != "" {
		slowMo, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return BrowserConfig{}, fmt.Errorf("invalid SLOW_MO_MS %q: %w", raw, err)
		}
		if slowMo < 0 {
			return BrowserConfig{}, fmt.Errorf("SLOW_MO_MS must not be negative")
		}
		config.SlowMo = slowMo
	}

	return config, nil
}
