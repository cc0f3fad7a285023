// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/animalapi/internal/logging"
)

// HTTPServer is the subset of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under suture.
//
//	server := &http.Server{Addr: ":3000", Handler: router}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
//
// A listener failure (for example the port is already in use) terminates
// the whole supervisor tree instead of restarting, so the process exits
// rather than running without a listener.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout means 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// Serve implements suture.Service.
//
// It returns ctx.Err() after a graceful shutdown, the Shutdown error if
// draining exceeded the timeout, and an error wrapping
// suture.ErrTerminateSupervisorTree if the server stopped on its own.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(h.name)

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if s, ok := h.server.(*http.Server); ok {
		logger.Info().Str("addr", s.Addr).Msg("Starting HTTP server")
	}

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%w: http server failed: %w", suture.ErrTerminateSupervisorTree, err)
		}
		return fmt.Errorf("%w: http server closed unexpectedly", suture.ErrTerminateSupervisorTree)

	case <-ctx.Done():
		logger.Info().Dur("timeout", h.shutdownTimeout).Msg("Draining HTTP connections")

		// The parent context is already canceled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		logger.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer so suture logs a readable service name.
func (h *HTTPServerService) String() string {
	return h.name
}
