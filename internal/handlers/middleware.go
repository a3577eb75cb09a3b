package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Requests slower than this are logged as warnings.
const slowRequestThreshold = 2 * time.Second

// WithCORS applies the permissive cross-origin policy to every response and
// short-circuits preflight requests before they reach the router.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithRequestLog tags each request with an id, echoes it in X-Request-Id and
// logs method, path and duration on completion.
func WithRequestLog(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r)

			duration := time.Since(start)
			entry := logger.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"duration":   duration.String(),
				"remote_ip":  r.RemoteAddr,
			})
			if duration > slowRequestThreshold {
				entry.Warn("Slow request detected")
			} else {
				entry.Info("Request completed")
			}
		})
	}
}

// WithRecover turns a handler panic into a 500 response instead of killing
// the process.
func WithRecover(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.WithFields(logrus.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  rec,
					}).Error("Handler panicked")
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(&HTTPError{
						Status:    http.StatusInternalServerError,
						Error:     "internal server error",
						ErrorCode: ErrInternal,
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
