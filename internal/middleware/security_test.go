package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/middleware"
)

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeaders())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	expected := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "no-referrer",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
		"Cache-Control":           "no-store",
	}

	for header, want := range expected {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestRequestID_IgnoresClientValue(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	var seen string

	r := gin.New()
	r.Use(middleware.RequestID(log))
	r.GET("/test", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected UUID request id, got %q", seen)
	}
	if got := w.Header().Get(middleware.RequestIDHeader); got != seen {
		t.Errorf("response header %q does not match context id %q", got, seen)
	}
}
