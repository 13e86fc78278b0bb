package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lectureportal/internal/flagx"
	"github.com/dmitrijs2005/lectureportal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the corresponding Config values untouched.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	Development    *bool           `json:"development"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DataDir        *string         `json:"data_dir"`
	Locale         *string         `json:"locale"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args. No
// flag means no JSON layer.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.Development != nil {
		cfg.Development = *jc.Development
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.Locale != nil {
		cfg.Locale = *jc.Locale
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
