package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSettingsPath is the settings file location relative to the working directory
const DefaultSettingsPath = "Config/appsettings.json"

// Settings keys as they appear in appsettings.json
const (
	KeyBaseURL        = "BaseUrl"
	KeyTimeoutSeconds = "TimeoutInSeconds"
	KeyMaxRetries     = "MaxRetries"
	KeyLogLevel       = "LogLevel"
	KeyLogFormat      = "LogFormat"
	KeyLogFile        = "LogFile"
)

// envBindings maps settings keys to the environment variables that override them
var envBindings = map[string]string{
	KeyBaseURL:        "STORECHECK_BASE_URL",
	KeyTimeoutSeconds: "STORECHECK_TIMEOUT_IN_SECONDS",
	KeyMaxRetries:     "STORECHECK_MAX_RETRIES",
	KeyLogLevel:       "STORECHECK_LOG_LEVEL",
	KeyLogFormat:      "STORECHECK_LOG_FORMAT",
	KeyLogFile:        "STORECHECK_LOG_FILE",
}

// Settings holds the values read from the JSON settings file.
// It is built once at startup and handed to whoever needs it; nothing
// is reloaded after construction.
type Settings struct {
	v *viper.Viper
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level  string
	Format string
	File   string
}

// LoadSettings reads settings from the JSON file at path.
// The file is optional: when it does not exist only environment overrides apply.
func LoadSettings(path string) (*Settings, error) {
	v := newViper()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat settings file %s: %w", path, err)
	}

	return &Settings{v: v}, nil
}

// NewSettings creates settings from in-memory values, bypassing the file
func NewSettings(values map[string]any) *Settings {
	v := newViper()
	for key, value := range values {
		v.Set(key, value)
	}
	return &Settings{v: v}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")

	// Only ambient keys get defaults. The three scenario keys must come from
	// the file or the environment.
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
	return v
}

// BaseURL returns the storefront base URL, or "" when it is not set
func (s *Settings) BaseURL() string {
	return s.v.GetString(KeyBaseURL)
}

// TimeoutSeconds returns the scenario timeout in seconds.
// A missing or malformed value is a format error; no default is substituted.
func (s *Settings) TimeoutSeconds() (int, error) {
	return s.intValue(KeyTimeoutSeconds)
}

// MaxRetries returns the configured retry count.
// It is exposed for completeness; no scenario retries on failure.
func (s *Settings) MaxRetries() (int, error) {
	return s.intValue(KeyMaxRetries)
}

// Logger returns the logging settings
func (s *Settings) Logger() LoggerConfig {
	return LoggerConfig{
		Level:  s.v.GetString(KeyLogLevel),
		Format: s.v.GetString(KeyLogFormat),
		File:   s.v.GetString(KeyLogFile),
	}
}

// WithBaseURL returns a copy of the settings with BaseUrl replaced
func (s *Settings) WithBaseURL(baseURL string) *Settings {
	v := newViper()
	for _, key := range s.v.AllKeys() {
		v.Set(key, s.v.Get(key))
	}
	v.Set(KeyBaseURL, baseURL)
	return &Settings{v: v}
}

func (s *Settings) intValue(key string) (int, error) {
	raw := s.v.GetString(key)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}
