package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with its outcome
// and the caller identity. It must run outside Identity, so the identity
// is read back from the context the inner handlers saw.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK, ctx: r.Context()}

			next.ServeHTTP(sw, r.WithContext(withCapture(r.Context(), sw)))

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			if userID, ok := ctxutil.UserIDFromCtx(sw.ctx); ok {
				attrs = append(attrs,
					slog.String("user_id", userID.String()),
					slog.String("role", ctxutil.RoleFromCtx(sw.ctx)),
				)
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	ctx         context.Context
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

type captureKey struct{}

func withCapture(ctx context.Context, sw *statusWriter) context.Context {
	return context.WithValue(ctx, captureKey{}, sw)
}

// captureIdentity records the enriched request context for the access log.
// Identity calls it after resolving the caller.
func captureIdentity(ctx context.Context) {
	if sw, ok := ctx.Value(captureKey{}).(*statusWriter); ok {
		sw.ctx = ctx
	}
}
