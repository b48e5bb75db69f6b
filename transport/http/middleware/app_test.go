package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"scaffold/config"
	"scaffold/infras/metrics"
	"scaffold/infras/otel/mocks"
	"scaffold/shared/cache"
	cacheMocks "scaffold/shared/cache/mocks"
	"scaffold/shared/constant"
	"scaffold/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.App.Name = "scaffold-test"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowCredentials = true
	cfg.App.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	cfg.App.CORS.AllowedHeaders = []string{"*"}
	cfg.App.CORS.MaxAgeSeconds = 600
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func newMiddleware(cfg *config.Config, redisCache cache.RedisCache) (middleware.AppMiddleware, *metrics.Metrics) {
	m := metrics.New(cfg)

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache, m), m
}

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, request)

	return rec
}

func TestRequestID(t *testing.T) {
	app, _ := newMiddleware(newConfig(), nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	t.Run("mints an id", func(t *testing.T) {
		rec := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		rec := serve(handler, request)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestRecoverer(t *testing.T) {
	app, _ := newMiddleware(newConfig(), nil)

	handler := app.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, rec.Body.String())
}

func TestRecoverer_AbortHandlerPropagates(t *testing.T) {
	app, _ := newMiddleware(newConfig(), nil)

	handler := app.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.Panics(t, func() {
		serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestLoggerAndTracing_PassThrough(t *testing.T) {
	app, _ := newMiddleware(newConfig(), nil)

	handler := app.Logger(app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	app, m := newMiddleware(newConfig(), nil)

	router := chi.NewRouter()
	router.Use(app.Metrics)
	router.Get("/api/items/{id}", ok)

	for _, path := range []string{"/api/items/1", "/api/items/2", "/missing"} {
		serve(router, httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(m.Registry(), "scaffold_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series for the item route and one for unmatched paths")
}

func TestSecure(t *testing.T) {
	cfg := newConfig()
	cfg.Server.Env = constant.ServerEnvProduction
	app, _ := newMiddleware(cfg, nil)

	rec := serve(app.Secure(ok), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		origin        string
		expectedAllow string
	}{
		{name: "allowed origin", enable: true, origin: "http://localhost:3000", expectedAllow: "http://localhost:3000"},
		{name: "unknown origin", enable: true, origin: "http://evil.example"},
		{name: "disabled", enable: false, origin: "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig()
			cfg.App.CORS.Enable = tt.enable
			app, _ := newMiddleware(cfg, nil)

			request := httptest.NewRequest(http.MethodGet, "/api/items", nil)
			request.Header.Set("Origin", tt.origin)

			rec := serve(app.CORS(ok), request)

			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	app, _ := newMiddleware(newConfig(), nil)

	request := httptest.NewRequest(http.MethodOptions, "/api/items", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := serve(app.CORS(ok), request)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRateLimit_Disabled(t *testing.T) {
	app, _ := newMiddleware(newConfig(), nil)
	handler := app.RateLimit(ok)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(handler, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
}

func TestRateLimit_InProcess(t *testing.T) {
	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	app, _ := newMiddleware(cfg, nil)
	handler := app.RateLimit(ok)

	for i := 0; i < cfg.App.RateLimiter.MaxRequests; i++ {
		assert.Equal(t, http.StatusOK, serve(handler, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"detail":"`+constant.ResponseErrorRequestLimitExceeded+`"}`, rec.Body.String())
}

func TestRateLimit_Redis(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		err          error
		expectedCode int
		remaining    string
	}{
		{name: "within budget", count: 1, expectedCode: http.StatusOK, remaining: "1"},
		{name: "last allowed", count: 2, expectedCode: http.StatusOK, remaining: "0"},
		{name: "over budget", count: 3, expectedCode: http.StatusTooManyRequests, remaining: "0"},
		{name: "cache failure lets the request through", err: errors.New("redis down"), expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			cfg := newConfig()
			cfg.App.RateLimiter.Enable = true
			app, _ := newMiddleware(cfg, mockCache)

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")
			request.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

			mockCache.EXPECT().
				Increment(gomock.Any(), "limiter:10.0.0.1:test-agent", cfg.App.RateLimiter.WindowSeconds).
				Return(tt.count, tt.err)

			rec := serve(app.RateLimit(ok), request)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
