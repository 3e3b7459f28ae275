// ABOUTME: Wraps the API client with the global unauthorized reaction
// ABOUTME: A 401 from any call logs the operator out and returns them to login

package gateway

import (
	"context"
	"log/slog"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
)

// Navigator moves the interface to another screen
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(path string)

// Navigate calls f(path)
func (f NavigatorFunc) Navigate(path string) { f(path) }

// Logouter ends the current session
type Logouter interface {
	Logout() error
}

// Gateway forwards requests to a client.Requester and reacts to
// unauthorized failures. It satisfies client.Requester itself.
type Gateway struct {
	next   client.Requester
	auth   Logouter
	nav    Navigator
	logger *slog.Logger
}

// New creates a Gateway. nav may be nil when there is nothing to navigate.
func New(next client.Requester, auth Logouter, nav Navigator) *Gateway {
	return &Gateway{
		next:   next,
		auth:   auth,
		nav:    nav,
		logger: slog.Default(),
	}
}

// WithLogger returns g using logger
func (g *Gateway) WithLogger(logger *slog.Logger) *Gateway {
	g.logger = logger
	return g
}

// Do performs the request. On an unauthorized failure the session is
// cleared and the navigator sent to the login screen before the original
// error is returned.
func (g *Gateway) Do(ctx context.Context, method, path string, body, out any) error {
	err := g.next.Do(ctx, method, path, body, out)
	if err == nil || !client.IsUnauthorized(err) {
		return err
	}

	g.logger.Info("Session rejected by API", "method", method, "path", path)
	if g.auth != nil {
		if lerr := g.auth.Logout(); lerr != nil {
			g.logger.Warn("Clearing session failed", "error", lerr)
		}
	}
	if g.nav != nil {
		g.nav.Navigate(route.Login)
	}
	return err
}
