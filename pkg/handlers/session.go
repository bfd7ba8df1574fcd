package handlers

import (
	"crypto/sha256"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/softerio/chatbot-engine/pkg/models"
)

// sessionName is the chat session cookie.
const sessionName = "chatbot-session"

// Session value keys.
const (
	sessionKeyID     = "session_id"
	sessionKeyLocale = "locale"
)

// sessionMaxAge keeps the locale preference for 30 days.
const sessionMaxAge = 30 * 24 * 60 * 60

// SessionStore wraps a cookie store holding the per-client chat state:
// a stable session id and the locale preference. The transport
// serializes requests per cookie, so the locale field is effectively
// single-writer with last-write-wins semantics.
type SessionStore struct {
	store *sessions.CookieStore
}

// NewSessionStore creates the cookie-based session store. The secret
// can be any passphrase; it is SHA-256 hashed to derive a signing key
// and must be stable across restarts.
func NewSessionStore(secret string, secure bool) *SessionStore {
	key := sha256.Sum256([]byte(secret))

	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionStore{store: store}
}

// ClientState is the decoded per-client session.
type ClientState struct {
	ID     uuid.UUID
	Locale models.Locale

	session *sessions.Session
}

// Get reads the client state from the request cookie, creating a fresh
// session (new id, locale auto) when absent or undecodable.
func (s *SessionStore) Get(r *http.Request) *ClientState {
	// An undecodable cookie still yields a usable new session.
	sess, _ := s.store.Get(r, sessionName)

	state := &ClientState{
		ID:     uuid.New(),
		Locale: models.LocaleAuto,

		session: sess,
	}

	if raw, ok := sess.Values[sessionKeyID].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			state.ID = id
		}
	}
	if raw, ok := sess.Values[sessionKeyLocale].(string); ok {
		if locale, err := models.ParseLocale(raw); err == nil {
			state.Locale = locale
		}
	}

	return state
}

// Save writes the client state back to the response cookie.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, state *ClientState) error {
	state.session.Values[sessionKeyID] = state.ID.String()
	state.session.Values[sessionKeyLocale] = string(state.Locale)
	return state.session.Save(r, w)
}
