package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 5000)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 15s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Sheets.CredentialsFile != "credentials.json" {
		t.Errorf("Sheets.CredentialsFile = %q, want credentials.json", cfg.Sheets.CredentialsFile)
	}
	if !cfg.Rate.Enabled || cfg.Rate.RequestsPerMinute != 120 {
		t.Errorf("Rate = %+v, want enabled at 120/min", cfg.Rate)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Rate.Enabled {
		t.Error("Rate.Enabled = true, want false")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"bad port", "SERVER_PORT", "70000"},
		{"non-numeric port", "SERVER_PORT", "abc"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"bad log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s succeeded, want error", tt.env, tt.value)
			}
		})
	}
}

func TestSheetsConfig_Configured(t *testing.T) {
	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(credPath, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  SheetsConfig
		want bool
	}{
		{"no spreadsheet id", SheetsConfig{CredentialsFile: credPath}, false},
		{"no credential files", SheetsConfig{SpreadsheetID: "abc", CredentialsFile: filepath.Join(dir, "missing.json")}, false},
		{"id and credentials", SheetsConfig{SpreadsheetID: "abc", CredentialsFile: credPath}, true},
		{"token preferred", SheetsConfig{SpreadsheetID: "abc", TokenFile: credPath}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSheetsConfig_CredentialsPath(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")
	if err := os.WriteFile(tokenPath, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := SheetsConfig{CredentialsFile: "credentials.json", TokenFile: tokenPath}
	if got := cfg.CredentialsPath(); got != tokenPath {
		t.Errorf("CredentialsPath() = %q, want token file %q", got, tokenPath)
	}

	cfg.TokenFile = filepath.Join(dir, "missing.json")
	if got := cfg.CredentialsPath(); got != "credentials.json" {
		t.Errorf("CredentialsPath() = %q, want credentials.json", got)
	}
}
