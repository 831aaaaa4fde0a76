package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"book-my-property/pkg/ratelimit"
	"book-my-property/pkg/utils"

	"go.uber.org/zap"
)

// RateLimit throttles requests per client ip and route. When the limiter
// itself fails the request is let through.
func RateLimit(limiter ratelimit.Limiter, scope string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + clientIP(r)

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				utils.LoggerFrom(r.Context(), logger).Warn("Rate limiter unavailable",
					zap.String("scope", scope),
					zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

			if !res.Allowed {
				seconds := int(math.Ceil(res.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				utils.ResponseTooManyRequests(w, "Too many requests, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP uses RemoteAddr; chi's RealIP middleware rewrites it from proxy headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
