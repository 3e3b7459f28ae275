// ABOUTME: Resource menu shown beside the dashboard overview
// ABOUTME: Lets the operator pick which catalog resource screen to open

package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/icons"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
)

// SelectedMsg is sent when the operator opens a resource
type SelectedMsg struct {
	Path string
}

type option struct {
	label string
	path  string
}

// Menu is the resource selection list
type Menu struct {
	options []option
	cursor  int
}

// New creates a menu listing every resource screen
func New() *Menu {
	m := &Menu{}
	for _, p := range route.Resources {
		m.options = append(m.options, option{label: route.Title(p), path: p})
	}
	return m
}

// Selected returns the path under the cursor
func (m *Menu) Selected() string {
	return m.options[m.cursor].path
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		path := m.Selected()
		return m, func() tea.Msg { return SelectedMsg{Path: path} }
	default:
		// Number shortcuts 1..n jump straight to a resource
		if s := key.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'0') <= len(m.options) {
			m.cursor = int(s[0]-'1')
			path := m.Selected()
			return m, func() tea.Msg { return SelectedMsg{Path: path} }
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Menu) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.Settings.String() + " Manage"))
	sb.WriteString("\n")

	selected := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	normal := lipgloss.NewStyle().Foreground(styles.Text)
	for i, opt := range m.options {
		line := fmt.Sprintf("%d %s %s", i+1, icons.ForRoute(opt.path).String(), opt.label)
		if i == m.cursor {
			sb.WriteString(selected.Render("> " + line))
		} else {
			sb.WriteString(normal.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
