package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envMode     = "PORTAL_ENV"
	envBaseURL  = "PORTAL_API_BASE_URL"
	envLocale   = "PORTAL_LOCALE"
	envLogLevel = "PORTAL_LOG_LEVEL"

	modeDevelopment = "development"
)

// parseEnv loads dotEnvPath (if it exists) into the process environment and
// overlays the PORTAL_* variables onto cfg.
func parseEnv(cfg *Config, dotEnvPath string) error {
	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotEnvPath, err)
		}
	}

	if v, ok := os.LookupEnv(envMode); ok {
		cfg.Development = strings.EqualFold(strings.TrimSpace(v), modeDevelopment)
	}
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envLocale); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return nil
}
