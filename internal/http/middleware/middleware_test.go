package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scoreboard-service/internal/testutil"
)

func TestLoggingMiddlewareAssignsRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID missing from context")
		}
		w.WriteHeader(http.StatusNoContent)
	})

	h := LoggingMiddleware(logger, nil, next)
	rr := testutil.Serve(h, http.MethodGet, "/api/live", nil)

	testutil.AssertStatus(t, rr, http.StatusNoContent)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("response must echo a request ID")
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("expected completion log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "status_code=204") {
		t.Fatalf("expected status in log, got %q", buf.String())
	}
}

func TestLoggingMiddlewareKeepsValidIncomingID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(h, req)

	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected the incoming ID to survive, got %q", got)
	}
}

func TestLoggingMiddlewareReplacesMalformedID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	rr := testutil.ServeRequest(h, req)

	if got := rr.Header().Get("X-Request-ID"); got == "bad id with spaces!" || got == "" {
		t.Fatalf("malformed incoming ID must be replaced, got %q", got)
	}
}

func TestNormalizePathCollapsesConferenceNames(t *testing.T) {
	if got := normalizePath("/api/conference/big_sky"); got != "/api/conference/:name" {
		t.Fatalf("expected collapsed conference path, got %q", got)
	}
	if got := normalizePath("/api/live"); got != "/api/live" {
		t.Fatalf("static path must pass through, got %q", got)
	}
}
