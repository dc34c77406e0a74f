package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/resumeforge/backend/pkg/utils"
)

type contextKey string

const userIDKey contextKey = "userID"

// Identity resolves the calling user from a request. Authentication itself
// happens upstream; this only extracts and verifies the identity handle.
type Identity interface {
	Resolve(r *http.Request) (string, bool)
}

// TokenMap maps opaque bearer tokens to user identifiers, loaded from
// configuration.
type TokenMap map[string]string

// Resolve matches the Authorization bearer token against the map.
func (m TokenMap) Resolve(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	user, ok := m[strings.TrimSpace(strings.TrimPrefix(header, prefix))]
	return user, ok && user != ""
}

// HeaderIdentity trusts an upstream-injected user header. Development mode
// only.
type HeaderIdentity struct {
	Header string
}

// Resolve reads the configured header.
func (h HeaderIdentity) Resolve(r *http.Request) (string, bool) {
	user := strings.TrimSpace(r.Header.Get(h.Header))
	return user, user != ""
}

// Auth rejects requests without a resolvable identity and stores the user
// id on the request context.
func Auth(identity Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := identity.Resolve(r)
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id stored by Auth, or empty.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
