// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animalapi/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(original) })
	return &buf
}

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success", http.StatusOK, "info"},
		{"redirect", http.StatusFound, "info"},
		{"not found", http.StatusNotFound, "warn"},
		{"server error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			handler := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("hello"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/cat/gif", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-1"))
			handler.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.wantLevel)
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", entry["status"], tt.status)
			}
			if entry["path"] != "/cat/gif" {
				t.Errorf("path = %v", entry["path"])
			}
			if entry["bytes"] != float64(5) {
				t.Errorf("bytes = %v, want 5", entry["bytes"])
			}
			if entry["request_id"] != "req-1" {
				t.Errorf("request_id = %v", entry["request_id"])
			}
		})
	}
}

func TestAccessLog_DefaultStatus(t *testing.T) {
	buf := captureLogs(t)

	handler := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(buf.String(), `"status":200`) {
		t.Errorf("expected status 200 for a handler that writes nothing, got %s", buf.String())
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "/cat/gif", "/cat/gif"},
		{"newline", "/cat\nINFO forged", `/cat\x0aINFO forged`},
		{"carriage return and tab", "a\r\tb", `a\x0d\x09b`},
		{"delete", "a\x7fb", `a\x7fb`},
		{"unicode kept", "/café", "/café"},
		{"truncated", strings.Repeat("a", maxLogValueLen+10), strings.Repeat("a", maxLogValueLen) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeLogValue(tt.in); got != tt.want {
				t.Errorf("SanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
