package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ekocak/todo-service/internal/adapters/http/dto"
	"github.com/ekocak/todo-service/internal/domain"
	"github.com/ekocak/todo-service/internal/ports"
)

// accessTokenCookie is the cookie consulted when no Authorization header is
// present, so browser clients holding the token as a cookie keep working.
const accessTokenCookie = "access_token"

// ownerKey is the context key for the authenticated owner's user ID.
type ownerKey struct{}

// WithOwner returns a new context carrying the authenticated owner ID.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFromContext extracts the authenticated owner ID from the context.
// Returns an empty string if the request was not authenticated.
func OwnerFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ownerKey{}).(string); ok {
		return id
	}
	return ""
}

// Authenticate returns middleware that resolves the request's bearer
// credential into an owner identity and stores it in the context. The
// credential is read from the Authorization header first, then from the
// access_token cookie. Requests with a missing or invalid credential are
// rejected with an RFC 9457 401 response before any handler runs.
func Authenticate(resolver ports.IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := extractCredential(r)
			if credential == "" {
				dto.WriteErrorResponse(w, r, fmt.Errorf("missing credentials: %w", domain.ErrUnauthorized))
				return
			}

			ownerID, err := resolver.Resolve(credential)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), ownerID)))
		})
	}
}

// extractCredential returns the bearer token from the Authorization header,
// falling back to the access_token cookie. Returns an empty string when
// neither carries a credential.
func extractCredential(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return token
		}
		return ""
	}

	if cookie, err := r.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
