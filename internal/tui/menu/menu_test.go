// ABOUTME: Tests for the resource menu
// ABOUTME: Validates menu rendering and selection behavior

package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
)

func TestMenuOptions(t *testing.T) {
	m := New()

	if len(m.options) != len(route.Resources) {
		t.Errorf("expected %d options, got %d", len(route.Resources), len(m.options))
	}
	if m.options[0].label != "Products" {
		t.Errorf("expected first option 'Products', got %s", m.options[0].label)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := New()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Selected() != route.Stock {
		t.Errorf("expected stock after down, got %s", m.Selected())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Selected() != route.Products {
		t.Errorf("expected cursor clamped at top, got %s", m.Selected())
	}
}

func TestMenuEnterSelects(t *testing.T) {
	m := New()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	msg, ok := cmd().(SelectedMsg)
	if !ok || msg.Path != route.Stock {
		t.Errorf("expected SelectedMsg for stock, got %#v", msg)
	}
}

func TestMenuNumberShortcut(t *testing.T) {
	m := New()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if cmd == nil {
		t.Fatal("expected command on number key")
	}
	if msg := cmd().(SelectedMsg); msg.Path != route.Orders {
		t.Errorf("expected orders, got %s", msg.Path)
	}
}

func TestMenuView(t *testing.T) {
	view := New().View()
	for _, p := range route.Resources {
		if !strings.Contains(view, route.Title(p)) {
			t.Errorf("expected %s in menu view", route.Title(p))
		}
	}
}
