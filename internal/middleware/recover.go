// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package middleware

import (
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/animalapi/internal/logging"
)

// internalErrorBody is written verbatim on panic. It is a constant so no
// request or dataset detail can reach the client.
const internalErrorBody = `{"error":"Internal server error","code":"INTERNAL_ERROR"}` + "\n"

// Recoverer turns a panic in a downstream handler into a generic 500 JSON
// response. The panic value and stack go to the log only.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
// If the handler already sent its status line, the response is left as is.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
				panic(rec)
			}

			logging.Ctx(r.Context()).Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", SanitizeLogValue(r.URL.Path)).
				Bytes("stack", debug.Stack()).
				Int("status_sent", ww.Status()).
				Msg("Recovered from handler panic")

			if ww.Status() != 0 {
				return
			}

			h := w.Header()
			h.Set("Content-Type", "application/json; charset=utf-8")
			h.Set("Cache-Control", "no-store")
			h.Del("ETag")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(internalErrorBody))
		}()

		next.ServeHTTP(ww, r)
	})
}
