package handler

import (
	baseHttp "net/http"

	"github.com/google/uuid"

	"github.com/Samuel-Loga/Personal-Website/pkg/clientstore"
)

// ClientCookieName is the single cookie holding the visitor's remembered
// state: their anonymous id and the comment-form prefill values.
const ClientCookieName = "blog_client"

const clientVisitorKey = "visitor_id"
const clientNameKey = "author_name"
const clientEmailKey = "author_email"

// visitorID returns the visitor's stable anonymous id, minting one when the
// store has none yet.
func visitorID(store clientstore.Store) string {
	if id, ok := store.Get(clientVisitorKey); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	store.Set(clientVisitorKey, id)

	return id
}

func rememberAuthor(store clientstore.Store, name, email string, remember bool) {
	if !remember {
		store.Delete(clientNameKey)
		store.Delete(clientEmailKey)

		return
	}

	store.Set(clientNameKey, name)
	store.Set(clientEmailKey, email)
}

func clientStoreFrom(r *baseHttp.Request) *clientstore.CookieStore {
	return clientstore.FromRequest(r, ClientCookieName)
}
