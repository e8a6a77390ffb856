package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// SessionHeader заголовок с идентификатором сессии клиента
const SessionHeader = "X-Session-ID"

const msgMissingSession = "отсутствует или некорректен заголовок X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "session_id"

// Session извлекает X-Session-ID и кладет его в контекст запроса
// Запросы без сессии отклоняются с 401
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))
		if sessionID == "" || utf8.RuneCountInString(sessionID) > domain.MaxSessionIDLength {
			handlers.RespondUnauthorized(w, msgMissingSession)
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID возвращает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}
