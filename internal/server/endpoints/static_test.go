package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStatic_ServesForm(t *testing.T) {
	_, _, handler := (&StaticEndpoint{}).Route()

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<form") {
		t.Error("expected upload form in response")
	}
	if !strings.Contains(body, "/process") {
		t.Error("expected form to target /process")
	}
}

func TestStatic_UnknownPathFallsBack(t *testing.T) {
	_, _, handler := (&StaticEndpoint{}).Route()

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<form") {
		t.Error("expected fallback to the form page")
	}
}
