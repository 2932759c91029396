package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLog пишет одну строку на запрос: метод, путь, статус, длительность и request_id.
// Должен стоять после RequestID.
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("%s %s - status=%d, duration_ms=%d, request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Milliseconds(), GetRequestID(r.Context()))
		})
	}
}
