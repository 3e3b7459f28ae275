// ABOUTME: Header and footer drawn around every screen
// ABOUTME: Shows branding, the current screen, key shortcuts, and data age

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/icons"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
)

// frameWidth is one less than the terminal to avoid wrapping, never below
// the minimum layout width
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("Strikers Gear Admin"))

	rightText := ""
	if a.path != "" && a.screen != ScreenLoading {
		rightText = " " + contextStyle.Render(route.Title(a.path)) + " "
	}

	fillWidth := width - 4 - lipgloss.Width(leftText) - lipgloss.Width(rightText) // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// shortcuts lists the keys available on the current screen
func (a *App) shortcuts() []string {
	switch a.screen {
	case ScreenAuth:
		return []string{"Enter Submit", "Esc Quit"}
	case ScreenAdminUnknown:
		return []string{"r Retry", "q Quit"}
	case ScreenDashboard:
		return []string{"↑↓ Navigate", "Enter Open", "r Refresh", "x Logout", "q Quit"}
	case ScreenResource:
		if a.path == route.Orders {
			return []string{"↑↓ Navigate", "s Advance", "c Cancel", "d Delete", "b Back", "q Quit"}
		}
		return []string{"↑↓ Move", "n New", "e Edit", "d Delete", "b Back", "q Quit"}
	case ScreenStock:
		return []string{"↑↓ Move", "+/- Qty", "n New", "e Edit", "d Delete", "b Back", "q Quit"}
	case ScreenEdit:
		return []string{"Tab Next", "Enter Save", "Esc Cancel"}
	}
	return []string{"q Quit"}
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	shortcuts := a.shortcuts()
	styled := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		key, label, ok := strings.Cut(s, " ")
		if !ok {
			styled = append(styled, s)
			continue
		}
		styled = append(styled, keyStyle.Render(key)+" "+labelStyle.Render(label))
	}

	leftText := " " + strings.Join(styled, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	// Right side status (last update time)
	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && (a.screen == ScreenDashboard || a.screen == ScreenResource || a.screen == ScreenStock) {
		elapsed := formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	fillWidth := width - 4 - lipgloss.Width(leftPlainText) - lipgloss.Width(rightPlainText) // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}

	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}
