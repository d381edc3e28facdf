package server

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
)

const sessionCookie = "session"

// session is the per-browser state for the admin surfaces. Sessions live
// in memory and reset on restart, like the rest of the scheduling state.
// Fields are guarded by the session's own mutex; concurrent requests can
// carry the same cookie.
type session struct {
	mu            sync.Mutex
	authenticated bool
	requestToken  string
}

func (s *session) authenticate() {
	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()
}

func (s *session) isAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *session) setRequestToken(token string) {
	s.mu.Lock()
	s.requestToken = token
	s.mu.Unlock()
}

// takeRequestToken returns the pending request token and clears it, so a
// replayed callback cannot exchange the same token twice.
func (s *session) takeRequestToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := s.requestToken
	s.requestToken = ""
	return token
}

// sessionStore issues and verifies HMAC-signed session cookies backed by
// an in-memory table.
type sessionStore struct {
	secret []byte

	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore(secret string) *sessionStore {
	return &sessionStore{
		secret:   []byte(secret),
		sessions: make(map[string]*session),
	}
}

// create issues a fresh session and returns its signed cookie value.
func (s *sessionStore) create() (string, *session) {
	id := make([]byte, 16)
	_, _ = rand.Read(id)
	encoded := hex.EncodeToString(id)

	sess := &session{}
	s.mu.Lock()
	s.sessions[encoded] = sess
	s.mu.Unlock()

	return encoded + "." + s.sign(encoded), sess
}

// get returns the session for the request's cookie, or nil when the cookie
// is absent, tampered with, or unknown.
func (s *sessionStore) get(r *http.Request) *session {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}

	id, signature, found := strings.Cut(cookie.Value, ".")
	if !found || !hmac.Equal([]byte(signature), []byte(s.sign(id))) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// destroy drops the session associated with the request, if any.
func (s *sessionStore) destroy(r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return
	}

	id, _, _ := strings.Cut(cookie.Value, ".")
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *sessionStore) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}
