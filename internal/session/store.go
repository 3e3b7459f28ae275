// ABOUTME: Session store holding the admin bearer credential
// ABOUTME: Single writer of the token and the derived authentication state

package session

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
)

// ErrEmptyToken is returned when Login is called without a credential
var ErrEmptyToken = errors.New("session: empty token")

// State is the session lifecycle
type State int

const (
	// StateUninitialized means persisted storage has not been read yet
	StateUninitialized State = iota
	// StateUnauthenticated means storage was read and holds no credential
	StateUnauthenticated
	// StateAuthenticated means a credential is present
	StateAuthenticated
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent read of the session
type Snapshot struct {
	Token string
	State State
}

// Authenticated reports whether the snapshot carries a credential
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated
}

// Persister is durable storage for the credential
type Persister interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Store owns the current credential. The authenticated state is always
// derived from the token inside the same critical section that changes it.
type Store struct {
	mu      sync.RWMutex
	persist Persister
	token   string
	state   State
}

// New creates an uninitialized store backed by p
func New(p Persister) *Store {
	return &Store{persist: p}
}

// Initialize reads the persisted credential. It never fails: unreadable
// storage is logged and treated as logged out.
func (s *Store) Initialize() State {
	token, err := s.persist.Load()
	if err != nil {
		slog.Warn("Reading persisted session failed, starting logged out", "error", err)
		token = ""
	}
	if strings.TrimSpace(token) == "" {
		token = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(token)
	return s.state
}

// Login persists token and marks the session authenticated
func (s *Store) Login(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist.Save(token); err != nil {
		return err
	}
	s.set(token)
	slog.Debug("Session logged in")
	return nil
}

// Logout erases the credential. Calling it while logged out is a no-op.
// The in-memory session is cleared even when erasing storage fails.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasAuthenticated := s.state == StateAuthenticated
	err := s.persist.Clear()
	s.set("")
	if wasAuthenticated {
		slog.Debug("Session logged out")
	}
	return err
}

// Token returns the current credential, or "" when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a credential is present
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated
}

// State returns the lifecycle state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns token and state read together
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Token: s.token, State: s.state}
}

// set must be called with s.mu held
func (s *Store) set(token string) {
	s.token = token
	if token != "" {
		s.state = StateAuthenticated
	} else {
		s.state = StateUnauthenticated
	}
}
