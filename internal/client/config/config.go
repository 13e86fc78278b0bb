package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DevelopmentBaseURL = "http://localhost:8080"
	ProductionBaseURL  = "https://api-production-7b6a.up.railway.app"
)

// Config holds runtime settings for the portal client.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the portal REST API, no trailing slash.
//   - Development: selects the development API default.
//   - RequestTimeout: fixed per-request timeout of the HTTP client.
//   - DataDir / DatabaseFile: where the local SQLite store lives.
//   - Locale: language of user-facing messages.
//   - LogLevel: minimum level written to stderr.
type Config struct {
	APIBaseURL     string        `validate:"required,url"`
	Development    bool
	RequestTimeout time.Duration `validate:"gt=0"`
	DataDir        string        `validate:"required"`
	DatabaseFile   string        `validate:"required"`
	Locale         string        `validate:"required"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = ""
	c.Development = false
	c.RequestTimeout = 10 * time.Second
	c.DataDir = ".lectureportal"
	c.DatabaseFile = "portal.db"
	c.Locale = "tr"
	c.LogLevel = "warn"
}

// DefaultBaseURL returns the API host used when none is configured.
func DefaultBaseURL(development bool) string {
	if development {
		return DevelopmentBaseURL
	}
	return ProductionBaseURL
}

// finalize fills derived values after every source has been applied.
func (c *Config) finalize() {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultBaseURL(c.Development)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config from defaults, environment, the optional JSON
// file and os.Args flags, in that order of increasing precedence.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], ".env")
}

func load(args []string, dotEnvPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, dotEnvPath); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	cfg.finalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
