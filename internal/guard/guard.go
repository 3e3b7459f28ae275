// ABOUTME: Render-time access decisions for guest and protected screens
// ABOUTME: Pure functions over a session snapshot, no I/O

package guard

import (
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
)

// Kind is the outcome of a guard check
type Kind int

const (
	// Render shows the requested screen
	Render Kind = iota
	// Redirect replaces the requested screen with Decision.To
	Redirect
	// Loading waits for the session to finish initializing
	Loading
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	case Loading:
		return "loading"
	default:
		return "unknown"
	}
}

// Decision is what the caller should do with a requested screen
type Decision struct {
	Kind Kind
	To   string
}

// Protected gates screens that need a credential
func Protected(s session.Snapshot) Decision {
	if s.State == session.StateUninitialized {
		return Decision{Kind: Loading}
	}
	if s.Token == "" && !s.Authenticated() {
		return Decision{Kind: Redirect, To: route.Login}
	}
	return Decision{Kind: Render}
}

// Guest gates login and registration, which make no sense once logged in
func Guest(s session.Snapshot) Decision {
	if s.State == session.StateUninitialized {
		return Decision{Kind: Loading}
	}
	if s.Token != "" || s.Authenticated() {
		return Decision{Kind: Redirect, To: route.Dashboard}
	}
	return Decision{Kind: Render}
}

// Resolve applies the guard matching path
func Resolve(path string, s session.Snapshot) Decision {
	if route.IsGuest(path) {
		return Guest(s)
	}
	return Protected(s)
}
