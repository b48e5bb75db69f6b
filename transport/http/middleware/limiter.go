package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"scaffold/shared"
	"scaffold/shared/constant"
	"scaffold/transport/http/response"

	"github.com/go-chi/httprate"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return next
	}

	return a.limiter(next)
}

// newLimiter prefers the shared Redis counter so every replica sees the same
// budget, and falls back to an in-process window when Redis is absent.
func (a *appMiddleware) newLimiter() func(http.Handler) http.Handler {
	maxReqs := a.config.App.RateLimiter.MaxRequests
	windowSecs := a.config.App.RateLimiter.WindowSeconds

	if a.cache == nil {
		return httprate.Limit(
			maxReqs,
			time.Duration(windowSecs)*time.Second,
			httprate.WithKeyFuncs(httprate.KeyByRealIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
				response.WithRequestLimitExceeded(w)
			}),
		)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, getClientIP(r), getUA(r))

			count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
			if err != nil {
				// A broken counter must not take the API down with it.
				log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
