package middlewares

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// RequireAuth sends anonymous visitors to the login page, remembering
// where they were headed.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUserID(r) == 0 {
			http.Redirect(w, r, "/login?return_url="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole guards a route subtree behind one role. Signed-in users
// without it land back on the home page.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if CurrentUserID(r) == 0 {
				http.Redirect(w, r, "/login?return_url="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
				return
			}
			if !HasRole(r, role) {
				log.Warn().
					Uint("user_id", CurrentUserID(r)).
					Str("role", role).
					Str("path", r.URL.Path).
					Msg("role check rejected request")
				http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("You are not allowed to access this page."), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
