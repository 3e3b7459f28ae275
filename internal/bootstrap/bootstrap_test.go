// ABOUTME: Tests for the first-run bootstrap flow
// ABOUTME: Covers status branching, registration, login, and password rules

package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
)

type fakeAuth struct {
	status    catalog.AuthStatus
	statusErr error
	result    catalog.AuthResult
	err       error
	calls     int
	password  string
}

func (f *fakeAuth) Status(ctx context.Context) (catalog.AuthStatus, error) {
	return f.status, f.statusErr
}

func (f *fakeAuth) Login(ctx context.Context, password string) (catalog.AuthResult, error) {
	f.calls++
	f.password = password
	return f.result, f.err
}

func (f *fakeAuth) Register(ctx context.Context, password string) (catalog.AuthResult, error) {
	f.calls++
	f.password = password
	return f.result, f.err
}

func newSession() *session.Store {
	s := session.New(&session.MemoryStore{})
	s.Initialize()
	return s
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAuth
		want AdminStatus
	}{
		{"admin exists", &fakeAuth{status: catalog.AuthStatus{HasAdmin: true}}, AdminExists},
		{"no admin yet", &fakeAuth{status: catalog.AuthStatus{HasAdmin: false}}, NoAdminYet},
		{"unreachable", &fakeAuth{statusErr: errors.New("connection refused")}, StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Check(context.Background(), tt.api)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			if (err != nil) != (tt.want == StatusUnknown) {
				t.Errorf("unexpected error %v for %s", err, got)
			}
		})
	}
}

func TestCheck_OverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/status" {
			t.Errorf("expected /auth/status, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"hasAdmin":false}`))
	}))
	defer server.Close()

	api := catalog.New(client.New(server.URL, nil)).Auth
	got, err := Check(context.Background(), api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != NoAdminYet {
		t.Errorf("expected create-admin branch, got %s", got)
	}
}

func TestCheck_ServerErrorIsUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	got, err := Check(context.Background(), catalog.New(client.New(server.URL, nil)).Auth)
	if got != StatusUnknown || err == nil {
		t.Errorf("expected StatusUnknown with error, got %s, %v", got, err)
	}
}

func TestRegister_StoresToken(t *testing.T) {
	api := &fakeAuth{result: catalog.AuthResult{Success: true, Token: "abc"}}
	sess := newSession()

	if err := Register(context.Background(), api, sess, "secret1", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token() != "abc" || !sess.Authenticated() {
		t.Errorf("expected session token abc, got %q", sess.Token())
	}
	if api.password != "secret1" {
		t.Errorf("expected password forwarded, got %q", api.password)
	}
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAuth
		want string
	}{
		{"no token", &fakeAuth{result: catalog.AuthResult{Success: true}}, "Registration failed"},
		{"not successful", &fakeAuth{result: catalog.AuthResult{Success: false, Token: "abc"}}, "Registration failed"},
		{"server message", &fakeAuth{err: &client.APIError{Status: 409, Message: "Admin already exists"}}, "Admin already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newSession()
			err := Register(context.Background(), tt.api, sess, "secret1", "secret1")
			if client.Message(err) != tt.want {
				t.Errorf("expected %q, got %v", tt.want, err)
			}
			if sess.Authenticated() {
				t.Error("expected session to stay logged out")
			}
		})
	}
}

func TestRegister_ValidationNeverCallsAPI(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		field    string
		want     string
	}{
		{"empty", "", "", "password", "Password is required"},
		{"short", "abc", "abc", "password", "Password must be at least 6 characters"},
		{"leading space", " secret1", " secret1", "password", "Password cannot start or end with spaces"},
		{"trailing space", "secret1 ", "secret1 ", "password", "Password cannot start or end with spaces"},
		{"missing confirm", "secret1", "", "confirmPassword", "Confirm password"},
		{"mismatch", "secret1", "secret2", "confirmPassword", "Passwords must match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAuth{result: catalog.AuthResult{Success: true, Token: "abc"}}
			err := Register(context.Background(), api, newSession(), tt.password, tt.confirm)
			var verr *catalog.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if got := verr.For(tt.field); got != tt.want {
				t.Errorf("expected %q on %s, got %q", tt.want, tt.field, got)
			}
			if api.calls != 0 {
				t.Errorf("expected no API call, got %d", api.calls)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	api := &fakeAuth{result: catalog.AuthResult{Success: true, Token: "tok"}}
	sess := newSession()
	if err := Login(context.Background(), api, sess, "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token() != "tok" {
		t.Errorf("expected token tok, got %q", sess.Token())
	}
}

func TestLogin_MissingToken(t *testing.T) {
	api := &fakeAuth{result: catalog.AuthResult{Success: false}}
	sess := newSession()
	err := Login(context.Background(), api, sess, "secret1")
	if !errors.Is(err, ErrLoginFailed) {
		t.Errorf("expected ErrLoginFailed, got %v", err)
	}
	if sess.Authenticated() {
		t.Error("expected session to stay logged out")
	}
}

func TestLogin_WrongPasswordFromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid password"}`))
	}))
	defer server.Close()

	api := catalog.New(client.New(server.URL, nil)).Auth
	err := Login(context.Background(), api, newSession(), "wrong!")
	if client.Message(err) != "Invalid password" {
		t.Errorf("expected 'Invalid password', got %v", err)
	}
}

func TestLogin_EmptyPassword(t *testing.T) {
	api := &fakeAuth{}
	err := Login(context.Background(), api, newSession(), "")
	var verr *catalog.ValidationError
	if !errors.As(err, &verr) || api.calls != 0 {
		t.Errorf("expected validation error without API call, got %v (%d calls)", err, api.calls)
	}
}

func TestAdminStatusString(t *testing.T) {
	if AdminExists.String() != "admin-exists" || NoAdminYet.String() != "no-admin-yet" || StatusUnknown.String() != "unknown" {
		t.Error("unexpected AdminStatus strings")
	}
}
