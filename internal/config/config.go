// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast
// on misconfiguration.
//
// Missing Google Sheets settings are deliberately not a validation
// failure: the server then starts in development mode against
// simulated data, and reports that mode through the health endpoint.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server  ServerConfig
	Sheets  SheetsConfig
	Rate    RateLimitConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1; the
	// desktop shell talks to the server over loopback)
	Host string `env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 5000)
	Port int `env:"SERVER_PORT" default:"5000"`

	// ReadTimeout is the maximum duration for reading a request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// SheetsConfig holds Google Sheets settings. All fields are optional;
// when the spreadsheet ID is unset or no credential file is present,
// the server runs in development mode against simulated data.
type SheetsConfig struct {
	// CredentialsFile is the Google credentials JSON path (default: credentials.json)
	CredentialsFile string `env:"GOOGLE_SHEETS_CREDENTIALS_FILE" default:"credentials.json"`

	// TokenFile is an authorized-user token JSON path, preferred over
	// CredentialsFile when it exists (default: token.json)
	TokenFile string `env:"GOOGLE_SHEETS_TOKEN_FILE" default:"token.json"`

	// SpreadsheetID identifies the backing spreadsheet
	SpreadsheetID string `env:"GOOGLE_SHEETS_SPREADSHEET_ID"`
}

// RateLimitConfig holds rate limiting settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Configured reports whether the Google Sheets backend can be used: a
// spreadsheet ID plus at least one credential file must be present.
func (c *SheetsConfig) Configured() bool {
	if c.SpreadsheetID == "" {
		return false
	}
	return fileExists(c.TokenFile) || fileExists(c.CredentialsFile)
}

// CredentialsPath returns the credential file to authorize with,
// preferring a stored authorized-user token over the client
// credentials file.
func (c *SheetsConfig) CredentialsPath() string {
	if fileExists(c.TokenFile) {
		return c.TokenFile
	}
	return c.CredentialsFile
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
