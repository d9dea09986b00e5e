package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

const sessionName = "threddit_session"

// SessionAuthMiddleware enforces cookie-session authentication for
// protected routes. The session carries only the user id; handlers resolve
// the full user through the service layer.
type SessionAuthMiddleware struct {
	store sessions.Store
}

// NewSessionAuthMiddleware creates a new session auth middleware
func NewSessionAuthMiddleware(store sessions.Store) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{store: store}
}

// RequireAuth middleware ensures the request carries a valid session
// If not authenticated, returns 401
// If authenticated, injects the user id into context
func (m *SessionAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := m.sessionUserID(r)
		if userID == "" {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s",
				r.RemoteAddr, r.Method, r.URL.Path)
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth middleware loads the user id if a session exists, but
// doesn't require it. Useful for endpoints that work for both
// authenticated and anonymous users.
func (m *SessionAuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := m.sessionUserID(r)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionUserID extracts the user id from the request's session cookie.
// Returns empty string when there is no valid session.
func (m *SessionAuthMiddleware) sessionUserID(r *http.Request) string {
	// A decode error means a stale or tampered cookie; treat it the same
	// as no session.
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return ""
	}

	userID, _ := session.Values["user_id"].(string)
	return userID
}

// GetUserID extracts the authenticated user's id from the request context
// Returns empty string if not authenticated
func GetUserID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
}

// SetTestUserID sets the user id in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

type authErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(authErrorResponse{
		Error:   "AuthenticationRequired",
		Message: message,
	}); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
