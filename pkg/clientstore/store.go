package clientstore

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

// Store is client-scoped key-value persistence: the server-side counterpart
// of the browser-profile local storage used for comment-form prefill and the
// per-visitor reaction map. Handlers receive it as an interface so tests can
// swap in a double that asserts reads and writes.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// CookieStore round-trips a flat string map through a single cookie encoded
// as base64 JSON. Values are advisory only; nothing here is authenticated.
type CookieStore struct {
	name   string
	values map[string]string
	dirty  bool
}

const defaultTTL = 365 * 24 * time.Hour

// FromRequest decodes the named cookie from the request, starting empty when
// the cookie is missing or malformed.
func FromRequest(r *http.Request, name string) *CookieStore {
	store := &CookieStore{
		name:   name,
		values: map[string]string{},
	}

	cookie, err := r.Cookie(name)
	if err != nil {
		return store
	}

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return store
	}

	var values map[string]string
	if err := json.Unmarshal(raw, &values); err != nil {
		return store
	}

	store.values = values

	return store
}

func (s *CookieStore) Get(key string) (string, bool) {
	value, ok := s.values[key]

	return value, ok
}

func (s *CookieStore) Set(key, value string) {
	s.values[key] = value
	s.dirty = true
}

func (s *CookieStore) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}

	delete(s.values, key)
	s.dirty = true
}

// Values returns a copy of the stored map.
func (s *CookieStore) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}

	return out
}

// Write persists the store back onto the response when it changed.
func (s *CookieStore) Write(w http.ResponseWriter) {
	if !s.dirty {
		return
	}

	raw, err := json.Marshal(s.values)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		Expires:  time.Now().Add(defaultTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
