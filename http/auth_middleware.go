package http

import (
	"context"
	"net/http"
	"strings"

	"threads-of-tradition/service"
)

type contextKey string

const (
	contextUserID   contextKey = "user_id"
	contextUserType contextKey = "user_type"
)

// AuthMiddleware requires a valid Bearer token of the given user type and
// puts the user's identity on the request context.
func AuthMiddleware(auth *service.AuthService, userType string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "authentication token is missing", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}
		if claims.UserType != userType {
			http.Error(w, userType+" access required", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), contextUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextUserType, claims.UserType)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFrom reads the authenticated user's ID set by AuthMiddleware.
func userIDFrom(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(contextUserID).(int64)
	return id, ok
}
