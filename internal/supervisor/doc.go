// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

/*
Package supervisor provides process supervision for the Animal API using suture v4.

# Overview

	RootSupervisor ("animalapi")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service start, failure, backoff, restart) are logged through
sutureslog, which writes to a log/slog logger. main passes
logging.NewSlogLogger() so these events land in the same zerolog stream as
request logs.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

# Shutdown

Canceling the context passed to Serve or ServeBackground stops every service.
Services still running after ShutdownTimeout are listed by
UnstoppedServiceReport.
*/
package supervisor
