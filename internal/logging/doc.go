// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

// Package logging provides centralized zerolog-based structured logging for the Animal API.
//
// JSON output is the default; console output is meant for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:     cfg.Logging.Level,
//	    Format:    cfg.Logging.Format,
//	    Caller:    cfg.Logging.Caller,
//	    Timestamp: true,
//	})
//
//	logging.Info().Int("animals", ds.Len()).Msg("Dataset loaded")
//	logging.Error().Err(err).Msg("Server stopped")
//
// # Log Levels
//
// From most to least verbose:
//
//	trace, debug, info (default), warn, error, fatal, panic, disabled
//
// Unknown level strings fall back to info.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # Component Loggers
//
//	log := logging.WithComponent("http-server")
//	log.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
//
// # Context-Aware Logging
//
// The request ID middleware stores request and correlation IDs in the request
// context. Ctx returns a logger that carries them:
//
//	logging.Ctx(r.Context()).Warn().Msg("Animal not found")
//
// # slog Adapter
//
// suture v4 reports supervisor events through log/slog. NewSlogLogger returns
// an slog.Logger that writes into the global zerolog logger:
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
//
// # Output Formats
//
// JSON Format (Production):
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"Starting HTTP server","addr":":3000"}
//
// Console Format (Development):
//
//	10:30:00 INF Starting HTTP server addr=:3000
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger
// is protected by sync.RWMutex for configuration changes.
package logging
