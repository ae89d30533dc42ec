package sessions

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const (
	authCookieName = "catalog-auth"

	userIDSessionKey   = "userID"
	userNameSessionKey = "userName"
	rolesSessionKey    = "roles"
)

// idle timeout of the authenticated session
const sessionIdleTimeout = 30 * time.Minute

func init() {
	gob.Register([]string{})
}

// SessionStore holds the signed-in user's identity between requests:
// numeric id, username and role names, carried as cookie claims.
type SessionStore interface {
	CurrentUser(r *http.Request) (userID uint, userName string, roles []string, ok bool)
	SignIn(w http.ResponseWriter, r *http.Request, userID uint, userName string, roles []string) error
	SignOut(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionIdleTimeout / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, authCookieName)
	if err != nil {
		log.Warn().Err(err).Msg("failed to decode auth session, starting a new one")
	}
	return session
}

func (c *CookieSessionStore) CurrentUser(r *http.Request) (uint, string, []string, bool) {
	session := c.getSession(r)
	if session == nil {
		return 0, "", nil, false
	}
	userID, ok := session.Values[userIDSessionKey].(uint)
	if !ok || userID == 0 {
		return 0, "", nil, false
	}
	userName, _ := session.Values[userNameSessionKey].(string)
	roles, _ := session.Values[rolesSessionKey].([]string)
	return userID, userName, roles, true
}

func (c *CookieSessionStore) SignIn(w http.ResponseWriter, r *http.Request, userID uint, userName string, roles []string) error {
	session := c.getSession(r)
	session.Values[userIDSessionKey] = userID
	session.Values[userNameSessionKey] = userName
	session.Values[rolesSessionKey] = roles
	return session.Save(r, w)
}

func (c *CookieSessionStore) SignOut(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
