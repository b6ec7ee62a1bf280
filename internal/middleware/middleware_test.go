package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/", func(c *gin.Context) {
		id := log.RequestIDFromContext(c.Request.Context())
		c.String(http.StatusOK, id)
	})
	return r
}

func do(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := New(&mockLogger{}, Config{})
	r := newEngine(mw.RequestID())

	t.Run("generated", func(t *testing.T) {
		w := do(r, nil)
		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(HeaderRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		w := do(r, map[string]string{HeaderRequestID: "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects after burst", func(t *testing.T) {
		// 10 per minute gives a burst of one request.
		mw := New(&mockLogger{}, Config{RateLimitPerMin: 10})
		r := newEngine(mw.RateLimit())
		client := map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}

		assert.Equal(t, http.StatusOK, do(r, client).Code)
		assert.Equal(t, http.StatusTooManyRequests, do(r, client).Code)

		other := map[string]string{"X-Real-IP": "10.0.0.9"}
		assert.Equal(t, http.StatusOK, do(r, other).Code, "clients are limited separately")
	})

	t.Run("disabled", func(t *testing.T) {
		mw := New(&mockLogger{}, Config{})
		r := newEngine(mw.RateLimit())
		for i := 0; i < 20; i++ {
			require.Equal(t, http.StatusOK, do(r, nil).Code)
		}
	})
}

func TestTelegramSecret(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantCode   int
	}{
		{name: "no token configured", configured: "", sent: "", wantCode: http.StatusOK},
		{name: "matching token", configured: "s3cret", sent: "s3cret", wantCode: http.StatusOK},
		{name: "missing token", configured: "s3cret", sent: "", wantCode: http.StatusUnauthorized},
		{name: "wrong token", configured: "s3cret", sent: "guess", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(&mockLogger{}, Config{TelegramSecretToken: tt.configured})
			r := newEngine(mw.TelegramSecret())

			header := map[string]string{}
			if tt.sent != "" {
				header[HeaderTelegramSecret] = tt.sent
			}
			assert.Equal(t, tt.wantCode, do(r, header).Code)
		})
	}
}
