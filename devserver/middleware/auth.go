// ABOUTME: Bearer token authentication middleware for admin routes
// ABOUTME: Rejects missing, malformed, or expired tokens with 401 JSON

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// UserClaims contains the verified token identity
type UserClaims struct {
	Subject string
	TokenID string
}

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const userClaimsKey contextKey = "userClaims"

// Auth returns middleware that requires a valid Bearer token.
// The 401 messages are what the admin clients show the user.
func Auth(tokens *Tokens) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				slog.Debug("Auth rejected: no token", "path", sanitizePath(r.URL.Path))
				WriteJSONError(w, "No token provided", http.StatusUnauthorized)
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				slog.Debug("Auth rejected: invalid format", "path", sanitizePath(r.URL.Path))
				WriteJSONError(w, "Invalid authorization format", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(token)
			if errors.Is(err, ErrTokenExpired) {
				slog.Debug("Auth rejected: expired token", "path", sanitizePath(r.URL.Path))
				WriteJSONError(w, "Token expired", http.StatusUnauthorized)
				return
			}
			if err != nil {
				slog.Debug("Auth rejected: invalid token", "path", sanitizePath(r.URL.Path), "error", err.Error())
				WriteJSONError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, &UserClaims{
				Subject: claims.Subject,
				TokenID: claims.ID,
			})
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUserClaims extracts user claims from request context.
// Returns nil if no claims are present.
func GetUserClaims(r *http.Request) *UserClaims {
	claims, ok := r.Context().Value(userClaimsKey).(*UserClaims)
	if !ok {
		return nil
	}
	return claims
}
