package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	method, path, handler := (&HealthEndpoint{}).Route()
	if method != "GET" || path != "/health" {
		t.Errorf("unexpected route: %s %s", method, path)
	}

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
}

func TestAll(t *testing.T) {
	eps := All(Config{})
	if len(eps) == 0 {
		t.Fatal("expected at least one endpoint")
	}

	// The static catch-all must come last so it never shadows routes.
	_, path, _ := eps[len(eps)-1].Route()
	if path != "/{path...}" {
		t.Errorf("expected static catch-all last, got %s", path)
	}
}
