package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sidingquote/testhelpers"
)

func TestHandleHealth(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleHealth(app)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("expected ok status in body, got %q", rec.Body.String())
	}
}
