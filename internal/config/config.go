// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the Animal API.
//
// Values are layered by LoadWithKoanf: struct defaults, then an optional YAML
// file, then environment variables.
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Dataset       DatasetConfig       `koanf:"dataset"`
	Security      SecurityConfig      `koanf:"security"`
	Logging       LoggingConfig       `koanf:"logging"`
	Observability ObservabilityConfig `koanf:"observability"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	// Port defaults to 3000 and is read from PORT.
	Port int `koanf:"port"`

	Host string `koanf:"host"`

	// Timeout is applied to both reads and writes.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful connection draining.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is development or production.
	Environment string `koanf:"environment"`
}

// DatasetConfig selects the animal dataset source.
type DatasetConfig struct {
	// Path to an animals.json file. Empty means the copy embedded in the binary.
	Path string `koanf:"path"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`

	// Rate limiting is off unless explicitly enabled.
	RateLimitEnabled bool          `koanf:"rate_limit_enabled"`
	RateLimitReqs    int           `koanf:"rate_limit_reqs"`
	RateLimitWindow  time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ObservabilityConfig toggles the operational endpoints.
type ObservabilityConfig struct {
	MetricsEnabled bool `koanf:"metrics_enabled"`
	SwaggerEnabled bool `koanf:"swagger_enabled"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
