// Package middleware HTTP middleware: аутентификация, метрики, rate limit
package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором пользователя
const HeaderUserID = "X-User-ID"

const msgUnauthorized = "требуется заголовок X-User-ID"

type contextKey struct{}

var userIDKey contextKey

// Auth требует непустой заголовок X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID достает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
