package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nextplay-automation/internal/middleware"
	"nextplay-automation/pkg/response"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type stubAutomationHandler struct{}

func (stubAutomationHandler) Automate(c *gin.Context) {
	c.Status(http.StatusOK)
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	srv, err := New(Config{
		Logger:            noopLogger{},
		Port:              8080,
		Mode:              gin.TestMode,
		Environment:       "production",
		Middleware:        middleware.New(noopLogger{}, nil),
		AutomationHandler: stubAutomationHandler{},
	})
	if err != nil {
		t.Fatalf("unexpected error building server: %v", err)
	}
	return srv
}

func TestHTTPServer(t *testing.T) {
	t.Run("Health Route Registered", func(t *testing.T) {
		srv := newTestServer(t)

		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Validate Rejects Missing Handler", func(t *testing.T) {
		_, err := New(Config{
			Logger:     noopLogger{},
			Port:       8080,
			Mode:       gin.TestMode,
			Middleware: middleware.New(noopLogger{}, nil),
		})
		if err == nil {
			t.Fatal("expected validation error for missing automation handler")
		}
	})

	t.Run("Panic Returns Internal Error Body", func(t *testing.T) {
		srv := newTestServer(t)
		srv.gin.GET("/boom", func(c *gin.Context) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp["error"] != response.DefaultErrorMessage {
			t.Errorf("error = %q, want %q", resp["error"], response.DefaultErrorMessage)
		}
	})
}
