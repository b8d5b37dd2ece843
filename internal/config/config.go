// Package config holds runtime settings for the kpimap server and CLI.
//
// Settings come from KPIMAP_* environment variables, optionally seeded
// from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel         = "KPIMAP_LOG_LEVEL"
	EnvLogFormat        = "KPIMAP_LOG_FORMAT"
	EnvServerName       = "KPIMAP_SERVER_NAME"
	EnvOnePagerMaxNotes = "KPIMAP_ONEPAGER_MAX_NOTES"
)

// Log encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config is the full runtime configuration.
type Config struct {
	LogLevel   string `validate:"oneof=debug info warn error"`
	LogFormat  string `validate:"oneof=json console"`
	ServerName string `validate:"required"`
	// OnePagerMaxNotes caps the notes on the one-pager.
	OnePagerMaxNotes int `validate:"min=1,max=20"`
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        FormatJSON,
		ServerName:       "kpimap",
		OnePagerMaxNotes: 4,
	}
}

// Load builds a Config from defaults, an optional .env file and the
// process environment, in that order.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvServerName); v != "" {
		c.ServerName = strings.TrimSpace(v)
	}
	if v := os.Getenv(EnvOnePagerMaxNotes); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOnePagerMaxNotes, err)
		}
		c.OnePagerMaxNotes = n
	}
	return nil
}

var validate = validator.New()

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s=%v fails %q", fe.Field(), fe.Value(), fe.Tag()+paramSuffix(fe.Param()))
	}
	return fmt.Errorf("invalid config: %w", err)
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
