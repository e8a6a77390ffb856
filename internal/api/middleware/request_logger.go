package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader заголовок корреляции запросов
const RequestIDHeader = "X-Request-ID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// RequestLogger пишет в лог каждый запрос с его длительностью
// Если клиент не передал X-Request-ID, он генерируется и возвращается в ответе
func RequestLogger(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("%s %s - status=%d, duration_ms=%d, request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Milliseconds(), reqID)
		})
	}
}
