package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"scaffold/config"
	"scaffold/infras/metrics"
	"scaffold/infras/otel"
	"scaffold/shared/cache"
	"scaffold/shared/constant"
	"scaffold/shared/failure"
	"scaffold/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/secure"
)

const routeUnmatched = "unmatched"

type AppMiddleware interface {
	RequestID(next http.Handler) http.Handler
	Recoverer(next http.Handler) http.Handler
	Logger(next http.Handler) http.Handler
	Tracing(next http.Handler) http.Handler
	Metrics(next http.Handler) http.Handler
	Secure(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel    otel.Otel
	config  *config.Config
	cache   cache.RedisCache
	metrics *metrics.Metrics
	secure  *secure.Secure
	cors    func(http.Handler) http.Handler
	limiter func(http.Handler) http.Handler
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache, metrics *metrics.Metrics) AppMiddleware {
	app := &appMiddleware{
		otel:    otel,
		config:  config,
		cache:   cache,
		metrics: metrics,
		secure: secure.New(secure.Options{
			STSSeconds:           63072000,
			STSIncludeSubdomains: true,
			FrameDeny:            true,
			ContentTypeNosniff:   true,
			BrowserXssFilter:     true,
			ReferrerPolicy:       "strict-origin-when-cross-origin",
			PermissionsPolicy:    "geolocation=(), microphone=(), camera=()",
			IsDevelopment:        config.IsDevelopment(),
		}),
		cors: cors.Handler(cors.Options{
			AllowedOrigins:   config.App.CORS.AllowedOrigins,
			AllowedMethods:   config.App.CORS.AllowedMethods,
			AllowedHeaders:   config.App.CORS.AllowedHeaders,
			ExposedHeaders:   []string{constant.RequestHeaderRequestID},
			AllowCredentials: config.App.CORS.AllowCredentials,
			MaxAge:           config.App.CORS.MaxAgeSeconds,
		}),
	}

	app.limiter = app.newLimiter()

	return app
}

// RequestID reuses an incoming X-Request-ID or mints a new one, and echoes it back.
func (a *appMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constant.RequestHeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(constant.RequestHeaderRequestID, requestID)
		ctx := context.WithValue(r.Context(), constant.ContextKeyRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *appMiddleware) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			log.Error().
				Str("request_id", RequestIDFromContext(r.Context())).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			response.WithError(w, failure.InternalError(errors.New("internal server error")))
		}()

		next.ServeHTTP(w, r)
	})
}

func (a *appMiddleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("request_id", RequestIDFromContext(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("latency", time.Since(start)).
			Str("remote", getClientIP(r)).
			Msg("request completed")
	})
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), constant.OtelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": getUA(r),
			"http.host":       r.Host,
			"http.source":     getClientIP(r),
			"http.request_id": RequestIDFromContext(ctx),
		})

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.route":       routePattern(r),
			"http.status_code": ww.Status(),
		})

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("%s responded %d", spanName, ww.Status()))
		}
	})
}

func (a *appMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		a.metrics.RequestStarted()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		a.metrics.RequestFinished(r.Method, routePattern(r), status, time.Since(start))
	})
}

func (a *appMiddleware) Secure(next http.Handler) http.Handler {
	return a.secure.Handler(next)
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return next
	}

	return a.cors(next)
}

// RequestIDFromContext returns the id set by the RequestID middleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)

	return requestID
}

// routePattern must run after the router has matched, i.e. once next returned.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return routeUnmatched
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return routeUnmatched
}
