// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

/*
Package config loads and validates the Animal API configuration.

Sources are layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (providers/structs)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/animalapi/config.yaml (first found wins)
 3. Environment variables, mapped explicitly (PORT, LOG_LEVEL, ...)

A .env file in the working directory is loaded into the process environment
before step 3. Variables already set in the environment are not overridden.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}

Example config.yaml:

	server:
	  port: 8080
	  shutdown_timeout: 15s
	dataset:
	  path: /srv/animals.json
	security:
	  cors_origins: ["https://example.com"]
	  rate_limit_enabled: true
	logging:
	  level: debug
	  format: console
*/
package config
