// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 65536 }, "PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "SHUTDOWN_TIMEOUT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, ""},
		{
			"rate limit bounds ignored when disabled",
			func(c *Config) { c.Security.RateLimitReqs = 0 },
			"",
		},
		{
			"rate limit requests out of range",
			func(c *Config) {
				c.Security.RateLimitEnabled = true
				c.Security.RateLimitReqs = 0
			},
			"RATE_LIMIT_REQUESTS",
		},
		{
			"rate limit window out of range",
			func(c *Config) {
				c.Security.RateLimitEnabled = true
				c.Security.RateLimitWindow = 2 * time.Hour
			},
			"RATE_LIMIT_WINDOW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			switch {
			case tt.wantErr == "" && err != nil:
				t.Errorf("Validate() unexpected error: %v", err)
			case tt.wantErr != "" && err == nil:
				t.Errorf("Validate() expected error containing %q", tt.wantErr)
			case tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr):
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("no warning expected in development")
	}

	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("warning expected for wildcard CORS in production")
	}

	cfg.Security.CORSOrigins = []string{"https://animals.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("no warning expected for explicit origins")
	}
}
