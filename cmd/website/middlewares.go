package main

import (
	"log/slog"
	"net/http"
	"time"
)

func newRequestLoggerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			slog.Debug("api request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"duration", time.Since(start),
			)
		})
	}
}
