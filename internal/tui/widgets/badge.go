// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges for stock, order, and active flags

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// LowStockThreshold is the quantity at or below which a row is flagged
const LowStockThreshold = 5

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func colors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	case StatusInfo:
		return BadgeInfoBg, BadgeInfoFg
	default:
		return BadgeNeutralBg, BadgeNeutralFg
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := colors(level)
	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// StockLevel classifies a quantity
func StockLevel(qty int) StatusLevel {
	switch {
	case qty <= 0:
		return StatusCritical
	case qty <= LowStockThreshold:
		return StatusWarning
	default:
		return StatusOK
	}
}

// StockLabel returns the plain label shown for a quantity
func StockLabel(qty int) string {
	if qty > 0 {
		return "In Stock"
	}
	return "Out of Stock"
}

// OrderLevel maps an order status onto a badge level
func OrderLevel(status string) StatusLevel {
	switch status {
	case catalog.OrderPending:
		return StatusWarning
	case catalog.OrderConfirmed:
		return StatusInfo
	case catalog.OrderShipped:
		return StatusOK
	case catalog.OrderCancelled:
		return StatusCritical
	default:
		return StatusNeutral
	}
}

// ActiveLabel returns the label for an active flag
func ActiveLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := colors(level)
	style := lipgloss.NewStyle().Foreground(bg)
	switch level {
	case StatusOK:
		return style.Render(icons.CheckOK.String())
	case StatusWarning:
		return style.Render(icons.Warning.String())
	case StatusCritical:
		return style.Render(icons.Critical.String())
	case StatusInfo:
		return style.Render(icons.Info.String())
	default:
		return style.Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := colors(level)
	textStyle := lipgloss.NewStyle().Foreground(bg)
	return fmt.Sprintf("%s %s", StatusIcon(level), textStyle.Render(text))
}
