package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
)

type contextKey string

const (
	// UserIDHeader заголовок с идентификатором мерчанта, проставляется шлюзом
	UserIDHeader = "X-User-ID"

	msgUnauthorized = "требуется заголовок X-User-ID"
)

// Auth пропускает только запросы с заголовком X-User-ID
func Auth(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.TrimSpace(r.Header.Get(UserIDHeader)) == "" {
				logger.Warn("%s %s - Missing %s: request_id=%s", r.Method, r.URL.Path, UserIDHeader, GetRequestID(r.Context()))
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
