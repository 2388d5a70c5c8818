package middleware

import (
	"context"
	"net/http"

	"go-hospital-resource-management/pkg/response"
	"go-hospital-resource-management/pkg/session"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	SessionIDKey contextKey = "session_id"
)

type SessionMiddleware struct {
	sessions *session.Store
}

func NewSessionMiddleware(sessions *session.Store) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Authenticate resolves the session cookie to a user id and injects both into
// the request context. Requests without a live session are rejected.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			response.Unauthorized(w, "Login required")
			return
		}

		userID, err := m.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if userID == 0 {
			response.Unauthorized(w, "Session expired or invalid")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, SessionIDKey, cookie.Value)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the logged-in user id from context
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetSessionIDFromContext extracts the session id from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}
