package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecuritySetsOWASPHeaders(t *testing.T) {
	h := Security()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/test", nil))

	want := map[string]string{
		"Cache-Control":           "no-store",
		"Content-Security-Policy": "frame-ancestors 'none'",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
	}
	for header, value := range want {
		if got := resp.Header().Get(header); got != value {
			t.Fatalf("%s: expected %q, got %q", header, value, got)
		}
	}
}

func TestSecurityKeepsDownstreamValues(t *testing.T) {
	h := Security()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Cache-Control", "max-age=3600")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("payload"))
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/test", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if got := resp.Header().Get("Cache-Control"); got != "max-age=3600" {
		t.Fatalf("downstream Cache-Control should win, got %q", got)
	}
	if resp.Body.String() != "payload" {
		t.Fatalf("body should pass through unchanged, got %q", resp.Body.String())
	}
}

func TestSecuritySkipsConfiguredPaths(t *testing.T) {
	h := Security("/api-docs")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		path        string
		wantHeaders bool
	}{
		{"/api-docs", false},
		{"/api-docs/openapi.json", false},
		{"/config", true},
	}
	for _, tc := range cases {
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tc.path, nil))
		hasHeaders := resp.Header().Get("X-Content-Type-Options") == "nosniff"
		if hasHeaders != tc.wantHeaders {
			t.Fatalf("%s: headers present = %v, want %v", tc.path, hasHeaders, tc.wantHeaders)
		}
	}
}
