package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// Context keys for middleware
type contextKey string

const (
	userKey  contextKey = "user"
	tokenKey contextKey = "token"
)

// RequireUser extracts the bearer token, recovers the asserted identity and
// stores both in the request context. Requests without a parseable token get
// a 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		user, ok := epaper.UserFromToken(token)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, ErrorResponse{Error: "authentication required"})
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the authenticated user stored by RequireUser.
func CurrentUser(r *http.Request) epaper.User {
	user, _ := r.Context().Value(userKey).(epaper.User)
	return user
}

// CurrentToken returns the bearer token stored by RequireUser.
func CurrentToken(r *http.Request) string {
	token, _ := r.Context().Value(tokenKey).(string)
	return token
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
