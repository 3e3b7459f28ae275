// ABOUTME: Starts the interactive console against the catalog API
// ABOUTME: Wires the unauthorized gateway into the running program

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/gateway"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/debuglog"
)

// Options configures Run
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	ConfigDir string
}

// programNavigator turns gateway redirects into navigation messages
type programNavigator struct {
	mu sync.Mutex
	p  *tea.Program
}

func (n *programNavigator) attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.p = p
}

// Navigate implements gateway.Navigator
func (n *programNavigator) Navigate(path string) {
	n.mu.Lock()
	p := n.p
	n.mu.Unlock()
	if p != nil {
		p.Send(navigateMsg{path: path})
	}
}

// Run starts the TUI and blocks until the operator quits
func Run(ctx context.Context, store *session.Store, opts Options) error {
	// Logs would corrupt the alt screen, so they go to a file while we run
	log, closer, err := debuglog.Open(opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	defer closer.Close()

	prev := slog.Default()
	slog.SetDefault(log)
	defer slog.SetDefault(prev)

	api := client.New(opts.BaseURL, store,
		client.WithTimeout(opts.Timeout),
		client.WithLogger(log),
	)
	nav := &programNavigator{}
	gw := gateway.New(api, store, nav).WithLogger(log)

	app := New(store, catalog.New(gw)).WithLogger(log)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	nav.attach(p)

	_, err = p.Run()
	app.shutdown()
	return err
}
