// ABOUTME: Shared lipgloss styles for the dashboard screens
// ABOUTME: Pitch-green palette, panel borders, stock gauge, and the form theme

package styles

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Primary   = lipgloss.Color("#16A34A") // pitch green
	Secondary = lipgloss.Color("#22D3EE") // kit cyan
	Muted     = lipgloss.Color("#71717A")
	Text      = lipgloss.Color("#FAFAFA")

	amber  = lipgloss.Color("#FBBF24")
	red    = lipgloss.Color("#F43F5E")
	gold   = lipgloss.Color("#EAB308")
	shadow = lipgloss.Color("#27272A")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1)

	StatusOK       = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	StatusWarning  = lipgloss.NewStyle().Bold(true).Foreground(amber)
	StatusCritical = lipgloss.NewStyle().Bold(true).Foreground(red)

	Panel       = panel(Muted)
	ActivePanel = panel(Secondary)

	KeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(gold)
	ValueStyle = lipgloss.NewStyle().Bold(true).Foreground(Text)
)

func panel(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)
}

// ProgressBar renders a gauge of width cells; a low fill is the alarming end
func ProgressBar(percent float64, width int) string {
	cells := min(max(int(percent*float64(width)/100), 0), width)

	color := Primary
	switch {
	case percent < 20:
		color = red
	case percent < 50:
		color = amber
	}

	gauge := strings.Repeat("▰", cells) + strings.Repeat("▱", width-cells)
	return lipgloss.NewStyle().Foreground(color).Render(gauge)
}

// FormTheme returns the huh theme shared by the login and admin forms
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	dim := lipgloss.Color("#A1A1AA")
	fg := lipgloss.NewStyle().Foreground

	t.Group.Title = fg(Primary).Bold(true).MarginBottom(1)
	t.Group.Description = fg(dim).MarginBottom(1)

	f := &t.Focused
	f.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(Primary)
	f.Title = fg(Secondary).Bold(true)
	f.Description = fg(dim)
	f.ErrorIndicator = fg(red).SetString(" !")
	f.ErrorMessage = fg(red)
	f.SelectSelector = fg(Primary).SetString("› ")
	f.Option = fg(Text)
	f.SelectedOption = fg(Primary).Bold(true)
	f.TextInput.Cursor = fg(gold)
	f.TextInput.Placeholder = fg(dim)
	f.TextInput.Prompt = fg(Primary)
	f.TextInput.Text = fg(Text)
	f.FocusedButton = lipgloss.NewStyle().Foreground(Text).Background(Primary).Padding(0, 2).MarginRight(1)
	f.BlurredButton = lipgloss.NewStyle().Foreground(dim).Background(shadow).Padding(0, 2).MarginRight(1)

	t.Blurred = t.Focused
	b := &t.Blurred
	b.Base = lipgloss.NewStyle().PaddingLeft(1).BorderStyle(lipgloss.HiddenBorder()).BorderLeft(true)
	b.Title = fg(dim)
	b.SelectSelector = fg(dim).SetString("  ")
	b.Option = fg(dim)

	return t
}
