// ABOUTME: Scrollable table for a resource listing
// ABOUTME: Wraps the bubbles table and tracks the selected document id

package resource

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/icons"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
)

// View shows one listing as a focused table
type View struct {
	listing Listing
	table   table.Model
}

// NewView creates a table for listing sized to height rows
func NewView(listing Listing, height int) *View {
	t := table.New(
		table.WithColumns(listing.Columns),
		table.WithRows(listing.Rows),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Text).
		Background(styles.Primary).
		Bold(false)
	t.SetStyles(s)

	return &View{listing: listing, table: t}
}

// SetListing replaces the rows while keeping the cursor in range
func (v *View) SetListing(listing Listing) {
	cursor := v.table.Cursor()
	v.listing = listing
	v.table.SetColumns(listing.Columns)
	v.table.SetRows(listing.Rows)
	if listing.Len() == 0 {
		v.table.SetCursor(0)
		return
	}
	v.table.SetCursor(min(cursor, listing.Len()-1))
}

// SetHeight resizes the table
func (v *View) SetHeight(h int) {
	v.table.SetHeight(max(h, 3))
}

// Listing returns the listing shown
func (v *View) Listing() Listing { return v.listing }

// Cursor returns the selected row index
func (v *View) Cursor() int { return v.table.Cursor() }

// SelectedID returns the id of the selected document, or ""
func (v *View) SelectedID() string {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.listing.IDs) {
		return ""
	}
	return v.listing.IDs[i]
}

// Update forwards navigation keys to the table
func (v *View) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

// View renders the title and table
func (v *View) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.ForRoute(v.listing.Path).String() + " " + route.Title(v.listing.Path)))
	sb.WriteString("\n")
	if v.listing.Len() == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render("Nothing here yet."))
		return sb.String()
	}
	sb.WriteString(v.table.View())
	return sb.String()
}
