// session/session.go
package session

import (
	"sync"

	"go.uber.org/zap"

	logger "github.com/buildtrack/epc-console/logging"
)

// Session holds the bearer credential for one signed-in operator. It is
// constructed once and injected into every resource client rather than read
// from ambient storage, so token rotation takes effect on the next call and
// interested components can subscribe to rotations.
type Session struct {
	mu    sync.RWMutex
	token string
	subs  []func(token string)
}

// New creates a session. An empty token means calls go out unauthenticated;
// the server decides the failure.
func New(token string) *Session {
	return &Session{token: token}
}

// Token returns the current bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken rotates the credential and notifies subscribers.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	logger.Info("Session token rotated", zap.Bool("authenticated", token != ""))
	for _, fn := range subs {
		fn(token)
	}
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.SetToken("")
}

// Subscribe registers a callback invoked on every token rotation.
func (s *Session) Subscribe(fn func(token string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
