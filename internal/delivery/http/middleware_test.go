package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestIsAllowedOrigin tests origin matching including the trailing
// wildcard form
func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{
		"http://127.0.0.1:5501",
		"http://localhost:*",
		"https://labelscan.app",
	}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"exact match", "http://127.0.0.1:5501", true},
		{"wildcard port match", "http://localhost:3000", true},
		{"other wildcard port", "http://localhost:5501", true},
		{"production origin", "https://labelscan.app", true},
		{"wrong scheme", "https://127.0.0.1:5501", false},
		{"unknown host", "http://evil.example.com", false},
		{"empty origin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAllowedOrigin(tt.origin, allowed); got != tt.want {
				t.Errorf("isAllowedOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

// TestCORSMiddleware tests header emission and preflight handling
func TestCORSMiddleware(t *testing.T) {
	allowed := []string{"http://127.0.0.1:5501"}

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(CORSMiddleware(allowed))
		router.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})
		return router
	}

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://127.0.0.1:5501")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://127.0.0.1:5501" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the request origin", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Access-Control-Allow-Credentials = %q, want true", got)
		}
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight is a 204 that stops the chain", func(t *testing.T) {
		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://127.0.0.1:5501")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNoContent)
		}
		if w.Body.String() == "pong" {
			t.Error("preflight reached the handler")
		}
	})
}
