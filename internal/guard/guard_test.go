// ABOUTME: Tests for guest and protected route guards
// ABOUTME: Covers loading, redirect, and render outcomes per session state

package guard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
)

var (
	uninitialized   = session.Snapshot{State: session.StateUninitialized}
	unauthenticated = session.Snapshot{State: session.StateUnauthenticated}
	authenticated   = session.Snapshot{Token: "tok", State: session.StateAuthenticated}
)

func TestProtected(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want Decision
	}{
		{"still loading", uninitialized, Decision{Kind: Loading}},
		{"logged out", unauthenticated, Decision{Kind: Redirect, To: route.Login}},
		{"logged in", authenticated, Decision{Kind: Render}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Protected(tt.snap)); diff != "" {
				t.Errorf("decision mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGuest(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want Decision
	}{
		{"still loading", uninitialized, Decision{Kind: Loading}},
		{"logged out", unauthenticated, Decision{Kind: Render}},
		{"logged in", authenticated, Decision{Kind: Redirect, To: route.Dashboard}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Guest(tt.snap)); diff != "" {
				t.Errorf("decision mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_UnauthenticatedProductsRedirectsToLogin(t *testing.T) {
	got := Resolve(route.Products, unauthenticated)
	want := Decision{Kind: Redirect, To: route.Login}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decision mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_AuthenticatedLoginRedirectsToDashboard(t *testing.T) {
	got := Resolve(route.Login, authenticated)
	want := Decision{Kind: Redirect, To: route.Dashboard}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decision mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_UnknownPathIsProtected(t *testing.T) {
	got := Resolve("/nowhere", unauthenticated)
	if got.Kind != Redirect || got.To != route.Login {
		t.Errorf("expected redirect to login, got %+v", got)
	}
}

func TestResolve_LiveStore(t *testing.T) {
	store := session.New(&session.MemoryStore{})
	if d := Resolve(route.Dashboard, store.Snapshot()); d.Kind != Loading {
		t.Fatalf("expected loading before initialize, got %s", d.Kind)
	}

	store.Initialize()
	if d := Resolve(route.Dashboard, store.Snapshot()); d.Kind != Redirect {
		t.Fatalf("expected redirect when logged out, got %s", d.Kind)
	}

	if err := store.Login("tok"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if d := Resolve(route.Dashboard, store.Snapshot()); d.Kind != Render {
		t.Errorf("expected render after login, got %s", d.Kind)
	}
	if d := Resolve(route.Login, store.Snapshot()); d.To != route.Dashboard {
		t.Errorf("expected login to redirect to dashboard, got %+v", d)
	}
}

func TestKindString(t *testing.T) {
	if Render.String() != "render" || Redirect.String() != "redirect" || Loading.String() != "loading" {
		t.Error("unexpected Kind strings")
	}
	if Kind(99).String() != "unknown" {
		t.Error("expected unknown for out-of-range kind")
	}
}
