package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Clare-zewei/clickengineA-sub000/internal/telemetry"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeCounter counts hits in memory
type fakeCounter struct {
	hits    map[string]int64
	resetAt time.Time
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{hits: make(map[string]int64), resetAt: time.Now().Add(time.Minute)}
}

func (f *fakeCounter) Hit(_ context.Context, key string, _ time.Duration) (int64, time.Time, error) {
	if f.err != nil {
		return 0, time.Time{}, f.err
	}
	f.hits[key]++
	return f.hits[key], f.resetAt, nil
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := telemetry.New(prometheus.NewRegistry())

	router := gin.New()
	router.Use(RequestLogger(zap.New(core), metrics))
	router.GET("/funnel-templates/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": RequestID(c), "actor": Actor(c)})
	})

	t.Run("generates request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/funnel-templates/abc", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Contains(t, w.Body.String(), `"actor":"anonymous"`)
	})

	t.Run("keeps incoming request id and actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/funnel-templates/abc", nil)
		req.Header.Set(RequestIDHeader, "rid-123")
		req.Header.Set(ActorHeader, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "rid-123", w.Header().Get(RequestIDHeader))
		assert.Contains(t, w.Body.String(), `"request_id":"rid-123"`)
		assert.Contains(t, w.Body.String(), `"actor":"alice"`)
	})

	t.Run("unmatched route logged as warning", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	entries := logs.FilterMessage("Request completed").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "/funnel-templates/:id", entries[0].ContextMap()["route"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/funnel-templates/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestRateLimiter(t *testing.T) {
	counter := newFakeCounter()

	router := gin.New()
	router.POST("/funnel-templates", RateLimiter(counter, 2, time.Minute, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/funnel-templates", nil))
		return w
	}

	first := send()
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusCreated, send().Code)

	limited := send()
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), `"error":"rate_limited"`)

	assert.Equal(t, int64(3), counter.hits["rl:192.0.2.1:POST:/funnel-templates"])
}

func TestRateLimiter_CounterFailureAllows(t *testing.T) {
	counter := newFakeCounter()
	counter.err = errors.New("redis unavailable")
	core, logs := observer.New(zapcore.WarnLevel)

	router := gin.New()
	router.POST("/funnel-templates", RateLimiter(counter, 1, time.Minute, zap.New(core)), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/funnel-templates", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, 1, logs.FilterMessage("Rate limit check failed, allowing request").Len())
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/events", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
