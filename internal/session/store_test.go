// ABOUTME: Tests for the session store lifecycle
// ABOUTME: Verifies login/logout invariants, idempotence, and persistence failures

package session

import (
	"errors"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// failingPersister returns configured errors
type failingPersister struct {
	MemoryStore
	loadErr  error
	saveErr  error
	clearErr error
}

func (f *failingPersister) Load() (string, error) {
	if f.loadErr != nil {
		return "", f.loadErr
	}
	return f.MemoryStore.Load()
}

func (f *failingPersister) Save(token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.MemoryStore.Save(token)
}

func (f *failingPersister) Clear() error {
	f.MemoryStore.Clear()
	return f.clearErr
}

func assertConsistent(t *testing.T, s *Store) {
	t.Helper()
	snap := s.Snapshot()
	if snap.Authenticated() != (snap.Token != "") {
		t.Fatalf("authenticated=%v but token=%q", snap.Authenticated(), snap.Token)
	}
	if s.Authenticated() != (s.Token() != "") {
		t.Fatalf("Authenticated() drifted from Token()")
	}
}

func TestNewIsUninitialized(t *testing.T) {
	s := New(&MemoryStore{})
	if s.State() != StateUninitialized {
		t.Errorf("expected uninitialized, got %s", s.State())
	}
	if s.Authenticated() {
		t.Error("expected not authenticated before Initialize")
	}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		want      State
		wantToken string
	}{
		{"no credential", "", StateUnauthenticated, ""},
		{"persisted credential", "tok-1", StateAuthenticated, "tok-1"},
		{"whitespace credential", " \t\n", StateUnauthenticated, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(&MemoryStore{token: tc.stored})
			if got := s.Initialize(); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
			if s.Token() != tc.wantToken {
				t.Errorf("expected token %q, got %q", tc.wantToken, s.Token())
			}
			assertConsistent(t, s)
		})
	}
}

func TestInitializeReadErrorIsLoggedOut(t *testing.T) {
	s := New(&failingPersister{loadErr: errors.New("disk gone")})
	if got := s.Initialize(); got != StateUnauthenticated {
		t.Errorf("expected unauthenticated on read error, got %s", got)
	}
}

func TestLoginThenToken(t *testing.T) {
	for _, token := range []string{"abc", "eyJhbGciOiJIUzI1NiJ9.e30.sig", " spaced "} {
		t.Run(token, func(t *testing.T) {
			p := &MemoryStore{}
			s := New(p)
			s.Initialize()

			if err := s.Login(token); err != nil {
				t.Fatalf("Login() error: %v", err)
			}
			if s.Token() != token {
				t.Errorf("expected token %q, got %q", token, s.Token())
			}
			if !s.Authenticated() {
				t.Error("expected authenticated after login")
			}
			if p.token != token {
				t.Errorf("expected persisted token %q, got %q", token, p.token)
			}
			assertConsistent(t, s)
		})
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	s := New(&MemoryStore{})
	s.Initialize()

	for _, token := range []string{"", "   "} {
		if err := s.Login(token); !errors.Is(err, ErrEmptyToken) {
			t.Errorf("Login(%q): expected ErrEmptyToken, got %v", token, err)
		}
	}
	if s.Authenticated() {
		t.Error("expected still logged out")
	}
}

func TestLoginPersistFailureLeavesSessionUnchanged(t *testing.T) {
	s := New(&failingPersister{saveErr: errors.New("read-only")})
	s.Initialize()

	if err := s.Login("abc"); err == nil {
		t.Fatal("expected save error")
	}
	if s.Authenticated() || s.Token() != "" {
		t.Error("expected session unchanged after failed login")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	s := New(&MemoryStore{token: "abc"})
	s.Initialize()

	for i := 0; i < 2; i++ {
		if err := s.Logout(); err != nil {
			t.Fatalf("Logout() #%d error: %v", i+1, err)
		}
		if s.Token() != "" {
			t.Errorf("Logout() #%d: expected empty token, got %q", i+1, s.Token())
		}
		if s.Authenticated() {
			t.Errorf("Logout() #%d: expected unauthenticated", i+1)
		}
		assertConsistent(t, s)
	}
}

func TestLogoutClearsMemoryEvenWhenStorageFails(t *testing.T) {
	s := New(&failingPersister{clearErr: errors.New("busy")})
	s.Initialize()
	s.Login("abc")

	if err := s.Logout(); err == nil {
		t.Error("expected clear error to be returned")
	}
	if s.Authenticated() {
		t.Error("expected in-memory session cleared")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUninitialized, "uninitialized"},
		{StateUnauthenticated, "unauthenticated"},
		{StateAuthenticated, "authenticated"},
		{State(42), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}
