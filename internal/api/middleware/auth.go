// Package middleware provides API-level HTTP middleware.
//
// There are no sessions here: the only credential is the room owner
// token, an opaque capability string. The middleware just extracts it;
// whether it proves ownership of a particular room is decided per
// request by the room service, so a request without a token is still a
// valid read.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const ownerTokenContextKey contextKey = "owner_token"

// OwnerTokenHeader is the legacy header name the original web client uses
const OwnerTokenHeader = "X-Owner-Token"

// OwnerToken extracts the owner token from the Authorization bearer
// header or the X-Owner-Token header and stores it in the request context.
func OwnerToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token != "" {
				ctx := context.WithValue(r.Context(), ownerTokenContextKey, token)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken extracts the owner token from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return r.Header.Get(OwnerTokenHeader)
}

// GetOwnerToken returns the presented owner token, or "" if none
func GetOwnerToken(ctx context.Context) string {
	token, _ := ctx.Value(ownerTokenContextKey).(string)
	return token
}
