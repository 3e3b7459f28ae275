// ABOUTME: Test helpers for e2e tests
// ABOUTME: Starts the API in-process and wires the real client stack to it

package e2e

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/config"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/handlers"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/store"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/gateway"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
)

// recordingNavigator remembers every redirect the gateway asks for
type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordingNavigator) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

// stack is one admin client talking to one API server
type stack struct {
	api     *client.Client
	catalog *catalog.Catalog
	session *session.Store
	nav     *recordingNavigator
}

// startAPI runs the development API with a fresh store
func startAPI(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{
			JWTSecret:     "e2e-secret-0123456789",
			TokenTTL:      time.Hour,
			RateLimitAuth: 100,
		}
	}
	srv := httptest.NewServer(handlers.NewHandler(cfg, store.New()).Mux())
	t.Cleanup(srv.Close)
	return srv
}

// newStack builds the client the CLI and TUI use, pointed at srv
func newStack(t *testing.T, srv *httptest.Server) *stack {
	t.Helper()
	hc := &http.Client{Transport: &http.Transport{}}
	t.Cleanup(hc.CloseIdleConnections)

	sess := session.New(&session.MemoryStore{})
	sess.Initialize()
	nav := &recordingNavigator{}
	api := client.New(srv.URL, sess, client.WithHTTPClient(hc), client.WithTimeout(5*time.Second))

	return &stack{
		api:     api,
		catalog: catalog.New(gateway.New(api, sess, nav)),
		session: sess,
		nav:     nav,
	}
}
