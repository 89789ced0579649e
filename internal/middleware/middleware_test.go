package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"course-compass/pkg/log"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop())
	r := gin.New()
	r.Use(mw.Recovery(), mw.RequestID(), mw.Logger())
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter()
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || w.Header().Get(RequestIDHeader) != seen {
		t.Errorf("expected generated request id, got ctx=%q header=%q", seen, w.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if seen != "abc" {
		t.Errorf("expected client request id, got %q", seen)
	}
}

func TestRecovery(t *testing.T) {
	r := newRouter()
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
