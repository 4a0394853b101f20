package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

// RequestTimeout bounds a whole request, workflow emails included
const RequestTimeout = 30 * time.Second

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

// TimeoutMiddleware adds request timeout to prevent long-running requests
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			done := make(chan bool)
			go func() {
				next.ServeHTTP(w, r)
				done <- true
			}()

			select {
			case <-done:
				// Request completed successfully
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					zap.S().Warnw("Request timeout",
						"path", r.URL.Path,
						"method", r.Method,
						"timeout", timeout)
					w.WriteHeader(http.StatusRequestTimeout)
					w.Write([]byte(`{"error": "Request timeout", "message": "The request took too long to process"}`))
				}
			}
		})
	}
}
