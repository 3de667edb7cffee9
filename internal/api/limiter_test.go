package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fruitsalade/fruitsalade/webutil/internal/logging"
)

func post(h http.Handler, path, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"password":"abc"}`))
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPostThrottledPerClient(t *testing.T) {
	h := NewServer(time.Hour).Handler()

	if rec := post(h, "/api/v1/util/password", "10.0.0.1:4000"); rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}

	rec := post(h, "/api/v1/util/password", "10.0.0.1:4001")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "3600" {
		t.Errorf("expected Retry-After 3600, got %q", got)
	}

	// The validate endpoint shares the client's window.
	if rec := post(h, "/api/v1/util/validate", "10.0.0.1:4002"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("validate: expected 429, got %d", rec.Code)
	}

	if rec := post(h, "/api/v1/util/password", "10.0.0.2:4000"); rec.Code != http.StatusOK {
		t.Errorf("other client: expected 200, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/util/icon?name=a.zip", nil)
	req.RemoteAddr = "10.0.0.1:4003"
	get := httptest.NewRecorder()
	h.ServeHTTP(get, req)
	if get.Code != http.StatusOK {
		t.Errorf("GET should not be throttled, got %d", get.Code)
	}
}

func TestPostUnthrottledWhenDisabled(t *testing.T) {
	h := NewServer(0).Handler()
	for i := 0; i < 5; i++ {
		if rec := post(h, "/api/v1/util/password", "10.0.0.1:4000"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
}

func TestLimiterReportsDrops(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logging.Replace(zap.New(core))
	defer logging.InitDefault()

	l := NewClientLimiter(time.Hour)
	l.Allow("10.0.0.1")
	l.Allow("10.0.0.1")
	l.Allow("10.0.0.9")
	if logs.Len() != 0 {
		t.Fatalf("expected drops to be logged after a quiet period, got %d entries", logs.Len())
	}

	l.report.Flush()
	entries := logs.FilterMessage("requests throttled").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 report, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["dropped"] != int64(1) {
		t.Errorf("expected 1 dropped, got %v", fields["dropped"])
	}
	if fields["last_client"] != "10.0.0.1" {
		t.Errorf("expected last client 10.0.0.1, got %v", fields["last_client"])
	}
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[::1]:5000"
	if got := clientKey(req); got != "::1" {
		t.Errorf("expected ::1, got %q", got)
	}
	req.RemoteAddr = "pipe"
	if got := clientKey(req); got != "pipe" {
		t.Errorf("expected pipe, got %q", got)
	}
}
