package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtezcan/go-catalog/app/utils/sessions"
)

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	UserNameKey  contextKey = "userName"
	UserRolesKey contextKey = "userRoles"
	CartCountKey contextKey = "cartCount"
)

// CurrentUserMiddleware copies the signed-in user's session claims into
// the request context so handlers and templates read them without
// touching the cookie store again.
func CurrentUserMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, userName, roles, ok := sessionStore.CurrentUser(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, UserNameKey, userName)
			ctx = context.WithValue(ctx, UserRolesKey, roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartCountMiddleware exposes the signed-in user's cart entry count to
// the layout badge.
func CartCountMiddleware(cartStore sessions.CartStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(UserIDKey).(uint)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			count := 0
			for _, item := range cartStore.GetCart(r) {
				if item.UserID == userID {
					count++
				}
			}
			ctx := context.WithValue(r.Context(), CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MethodOverrideMiddleware lets HTML forms submit PUT/DELETE through a
// hidden _method field.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUserID reads the signed-in user's id from the request context,
// zero when anonymous.
func CurrentUserID(r *http.Request) uint {
	userID, _ := r.Context().Value(UserIDKey).(uint)
	return userID
}

// HasRole reports whether the signed-in user carries the role.
func HasRole(r *http.Request, role string) bool {
	roles, _ := r.Context().Value(UserRolesKey).([]string)
	for _, held := range roles {
		if held == role {
			return true
		}
	}
	return false
}
