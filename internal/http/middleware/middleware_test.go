package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/time/rate"

	"wasalny/internal/http/handlers"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func get(r http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := get(r, "/ping", http.Header{RequestIDHeader: {"abc-123"}})
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("echoed id = %q", got)
	}
	w = get(r, "/ping", nil)
	if got := w.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Errorf("generated id = %q", got)
	}
}

func TestLoggingStoresRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logging(zaptest.NewLogger(t)))
	var found bool
	r.GET("/ping", func(c *gin.Context) {
		v, ok := c.Get(handlers.LoggerKey)
		_, found = v.(*zap.Logger)
		found = found && ok
		c.Status(http.StatusNoContent)
	})
	if w := get(r, "/ping", nil); w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if !found {
		t.Error("request logger not set on the context")
	}
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(zaptest.NewLogger(t)))
	if w := get(r, "/panic", nil); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if w := get(r, "/ping", nil); w.Code != http.StatusOK {
		t.Errorf("status after panic = %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		perSecond float64
		burst     int
		want      []int
	}{
		{"burst then reject", 0.001, 2, []int{200, 200, 429}},
		{"disabled", 0, 0, []int{200, 200, 200, 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(RateLimit(tt.perSecond, tt.burst, zaptest.NewLogger(t)))
			for i, want := range tt.want {
				if w := get(r, "/ping", nil); w.Code != want {
					t.Errorf("request %d status = %d, want %d", i, w.Code, want)
				}
			}
		})
	}
}

func TestLimiterStoreEvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	store := newLimiterStore(rate.Limit(1), 1)
	store.now = func() time.Time { return now }

	store.get("10.0.0.1")
	store.get("10.0.0.2")
	now = now.Add(clientIdleTTL / 2)
	store.get("10.0.0.2")
	now = now.Add(clientIdleTTL / 2)
	store.get("10.0.0.3")

	if _, ok := store.clients["10.0.0.1"]; ok {
		t.Error("idle client kept")
	}
	for _, ip := range []string{"10.0.0.2", "10.0.0.3"} {
		if _, ok := store.clients[ip]; !ok {
			t.Errorf("active client %s evicted", ip)
		}
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"wildcard", []string{"*"}, "https://example.org", "*"},
		{"listed origin", []string{"https://wasalny.com"}, "https://wasalny.com", "https://wasalny.com"},
		{"unlisted origin", []string{"https://wasalny.com"}, "https://evil.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(CORS(tt.origins))
			w := get(r, "/ping", http.Header{"Origin": {tt.origin}})
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}
