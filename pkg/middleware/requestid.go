package middleware

import (
	"net/http"

	"book-my-property/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds ids accepted from clients.
const maxRequestIDLen = 128

// RequestID reuses the caller's X-Request-ID or generates one, echoes it back and
// scopes a logger carrying it onto the request context.
func RequestID(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := utils.SetRequestIDContext(r.Context(), id)
			ctx = utils.WithLogger(ctx, logger.With(zap.String("request_id", id)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
