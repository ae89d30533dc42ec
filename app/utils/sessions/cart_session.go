package sessions

import (
	"net/http"
	"time"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const (
	cartCookieName = "catalog-cart"

	cartItemsSessionKey = "items"
)

// CartStore keeps the session-scoped cart line items. The whole list is
// read and written back on every mutation; there is no per-item update
// granularity at the storage layer.
type CartStore interface {
	GetCart(r *http.Request) []models.CartItem
	SetCart(w http.ResponseWriter, r *http.Request, items []models.CartItem) error
}

type CookieCartStore struct {
	store *sessions.CookieStore
}

func NewCookieCartStore(keyPairs ...[]byte) *CookieCartStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionIdleTimeout / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieCartStore{store: store}
}

func (c *CookieCartStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, cartCookieName)
	if err != nil {
		log.Warn().Err(err).Msg("failed to decode cart session, starting a new one")
	}
	return session
}

func (c *CookieCartStore) GetCart(r *http.Request) []models.CartItem {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	items, ok := session.Values[cartItemsSessionKey].([]models.CartItem)
	if !ok {
		return nil
	}
	return items
}

func (c *CookieCartStore) SetCart(w http.ResponseWriter, r *http.Request, items []models.CartItem) error {
	session := c.getSession(r)
	session.Values[cartItemsSessionKey] = items
	return session.Save(r, w)
}
