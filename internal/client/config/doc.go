// Package config loads runtime configuration for the lecture portal shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional .env file in the working directory (loaded
//     with godotenv, never overriding variables already set), then the
//     PORTAL_* variables listed below.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// When no API base URL is configured, the development or production default
// is chosen from the Development switch. A trailing slash is always trimmed.
//
// Environment variables
//
//	PORTAL_ENV           "development" enables development defaults
//	PORTAL_API_BASE_URL  base URL of the portal REST API
//	PORTAL_LOCALE        message language ("tr", "en")
//	PORTAL_LOG_LEVEL     debug | info | warn | error
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-d string   local data directory
//	-l string   message language
//	-v string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://portal.example.edu",
//	  "request_timeout": "10s",
//	  "data_dir": ".lectureportal",
//	  "locale": "en",
//	  "log_level": "warn"
//	}
package config
