// ABOUTME: Tests for the root command and global flag handling
// ABOUTME: Verifies configuration resolution, guards, and exit code mapping

package cmd

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/config"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
)

// setupCLI points the global flags at srv and a fresh config directory
func setupCLI(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvDashboardAPIURL, "")

	dir := t.TempDir()
	configDir = dir
	apiURL = ""
	if srv != nil {
		apiURL = srv.URL
	}
	jsonOutput = false
	timeout = 5 * time.Second

	t.Cleanup(func() {
		configDir = ""
		apiURL = ""
		jsonOutput = false
		timeout = 0
	})
	return dir
}

// loginAs stores token as the persisted session in dir
func loginAs(t *testing.T, dir, token string) {
	t.Helper()
	if err := session.NewFileStore(dir).Save(token); err != nil {
		t.Fatalf("saving session: %v", err)
	}
}

func storedToken(t *testing.T, dir string) string {
	t.Helper()
	token, err := session.NewFileStore(dir).Load()
	if err != nil {
		t.Fatalf("loading session: %v", err)
	}
	return token
}

func TestLoadSettings_Default(t *testing.T) {
	setupCLI(t, nil)

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.APIURL != config.DefaultAPIURL {
		t.Errorf("expected default URL %s, got %s", config.DefaultAPIURL, s.APIURL)
	}
}

func TestLoadSettings_FromEnv(t *testing.T) {
	setupCLI(t, nil)
	t.Setenv(config.EnvAPIURL, "http://backend.example.com")

	s, _ := loadSettings()
	if s.APIURL != "http://backend.example.com" {
		t.Errorf("expected http://backend.example.com, got %s", s.APIURL)
	}
}

func TestLoadSettings_FlagOverridesEnv(t *testing.T) {
	setupCLI(t, nil)
	t.Setenv(config.EnvAPIURL, "http://backend.example.com")
	apiURL = "http://flag-override.example.com"

	s, _ := loadSettings()
	if s.APIURL != "http://flag-override.example.com" {
		t.Errorf("expected flag to override env, got %s", s.APIURL)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("expected timeout flag honored, got %v", s.Timeout)
	}
}

func TestJSONOutput(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	if !IsJSONOutput() {
		t.Error("expected IsJSONOutput to return true")
	}
}

func TestProtectedRuntime_NotLoggedIn(t *testing.T) {
	setupCLI(t, nil)

	var buf bytes.Buffer
	rt, code := protectedRuntime(&buf)
	if rt != nil || code != 2 {
		t.Errorf("expected guard to stop with exit 2, got rt=%v code=%d", rt, code)
	}
	if !strings.Contains(buf.String(), "not logged in") {
		t.Errorf("expected not logged in message, got %q", buf.String())
	}
}

func TestFailExitCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dir := setupCLI(t, srv)
	loginAs(t, dir, "tok")

	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"unauthorized", &client.APIError{Status: 401, Message: "Unauthorized"}, 2, "session expired"},
		{"validation", catalog.ValidateQuantity(-1), 2, "Stock must be 0 or greater"},
		{"transport", &client.TransportError{Method: "GET", URL: "x", Err: errors.New("refused")}, 2, "Error:"},
		{"api failure", &client.APIError{Status: 404, Message: "Product not found"}, 1, "Product not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, _ := protectedRuntime(&bytes.Buffer{})
			var buf bytes.Buffer
			if code := rt.fail(&buf, tt.err); code != tt.code {
				t.Errorf("expected exit %d, got %d", tt.code, code)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, buf.String())
			}
		})
	}
}
