package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddlewareLogsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Replace(zap.New(core))
	defer InitDefault()

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/util/size", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("expected X-Request-ID req-42, got %q", got)
	}

	entries := logs.FilterMessage("request completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-42" {
		t.Errorf("expected request_id req-42, got %v", fields["request_id"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("expected status 418, got %v", fields["status"])
	}
	if fields["size"] != int64(len("short and stout")) {
		t.Errorf("expected size %d, got %v", len("short and stout"), fields["size"])
	}
}

func TestMiddlewareGeneratesRequestID(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	Replace(zap.New(core))
	defer InitDefault()

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))

	a, b := first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID")
	if a == "" || b == "" {
		t.Fatal("expected generated request IDs")
	}
	if a == b {
		t.Errorf("expected distinct request IDs, both were %q", a)
	}
}

func TestSetLevel(t *testing.T) {
	SetLevel("debug")
	if !globalLevel.Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level enabled")
	}
	SetLevel("bogus")
	if !globalLevel.Enabled(zapcore.DebugLevel) {
		t.Error("invalid level should leave the current level alone")
	}
	SetLevel("info")
}
