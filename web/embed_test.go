package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler(t *testing.T) {
	h := Handler()

	tests := []struct {
		name     string
		path     string
		contains string
	}{
		{name: "root serves index", path: "/", contains: Title},
		{name: "asset", path: "/app.js", contains: "/api/v1/chat/sessions"},
		{name: "network error keeps transcript", path: "/app.js", contains: "render(lastTurns, \"Sorry"},
		{name: "unknown path falls back", path: "/some/where", contains: Title},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			body, _ := io.ReadAll(w.Body)
			if !strings.Contains(strings.ReplaceAll(string(body), "&amp;", "&"), tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}
