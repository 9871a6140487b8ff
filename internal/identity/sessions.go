package identity

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"
)

const (
	CookieName    = "awardpool_session"
	SessionExpiry = 24 * time.Hour
)

type sessionEntry struct {
	identity Identity
	expiry   time.Time
}

// SessionStore maps browser session tokens to identities.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]sessionEntry)}
}

// Create issues a token for the identity
func (s *SessionStore) Create(id Identity) string {
	token := generateToken()
	s.mu.Lock()
	s.sessions[token] = sessionEntry{identity: id, expiry: time.Now().Add(SessionExpiry)}
	s.mu.Unlock()
	return token
}

// Get returns the identity for a token, if the session is still valid
func (s *SessionStore) Get(token string) (Identity, bool) {
	s.mu.RLock()
	entry, exists := s.sessions[token]
	s.mu.RUnlock()

	if !exists {
		return Identity{}, false
	}
	if time.Now().After(entry.expiry) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return Identity{}, false
	}
	return entry.identity, true
}

// Delete invalidates a token
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// FromRequest resolves the identity from the request's session cookie
func (s *SessionStore) FromRequest(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Identity{}, false
	}
	return s.Get(cookie.Value)
}

// SetCookie sets the participant session cookie on the response
func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionExpiry.Seconds()),
	})
}

// ClearCookie removes the participant session cookie
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func generateToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
