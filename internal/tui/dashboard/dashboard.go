// ABOUTME: Dashboard component summarizing the catalog at a glance
// ABOUTME: Shows product, stock, and order metrics in the left pane

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/icons"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/widgets"
)

// Overview holds the counts shown on the dashboard
type Overview struct {
	Products       int
	ActiveProducts int
	StockRows      int
	OutOfStock     int
	LowStock       int
	Units          int
	Orders         int
	OrdersByStatus map[string]int
	Revenue        float64
	Brands         int
	Categories     int
	Banners        int
}

// Data is everything the overview is computed from
type Data struct {
	Products   []catalog.Product
	Stock      []catalog.Stock
	Orders     []catalog.Order
	Brands     []catalog.Brand
	Categories []catalog.Category
	Banners    []catalog.Banner
}

// Summarize computes the overview from loaded documents
func Summarize(d Data) Overview {
	o := Overview{
		Products:       len(d.Products),
		StockRows:      len(d.Stock),
		Orders:         len(d.Orders),
		OrdersByStatus: make(map[string]int),
		Brands:         len(d.Brands),
		Categories:     len(d.Categories),
		Banners:        len(d.Banners),
	}
	for _, p := range d.Products {
		if p.Active() {
			o.ActiveProducts++
		}
	}
	for _, s := range d.Stock {
		o.Units += max(s.Quantity, 0)
		switch widgets.StockLevel(s.Quantity) {
		case widgets.StatusCritical:
			o.OutOfStock++
		case widgets.StatusWarning:
			o.LowStock++
		}
	}
	for _, ord := range d.Orders {
		o.OrdersByStatus[ord.Status]++
		if ord.Status != catalog.OrderCancelled {
			o.Revenue += ord.TotalAmount
		}
	}
	return o
}

// InStockPercent is the share of stock rows with units available
func (o Overview) InStockPercent() float64 {
	if o.StockRows == 0 {
		return 0
	}
	return float64(o.StockRows-o.OutOfStock) / float64(o.StockRows) * 100
}

// Dashboard displays catalog metrics
type Dashboard struct {
	overview *Overview
	width    int
	height   int
}

// New creates a new dashboard with an overview (nil while loading)
func New(overview *Overview, width, height int) *Dashboard {
	return &Dashboard{
		overview: overview,
		width:    width,
		height:   height,
	}
}

// Update replaces the overview
func (d *Dashboard) Update(overview *Overview) {
	d.overview = overview
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.overview == nil {
		return lipgloss.NewStyle().Width(d.width).Render("Loading catalog overview...")
	}
	o := d.overview

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Catalog Overview"))
	sb.WriteString("\n")

	cfg := widgets.DefaultMetricBlockConfig()
	blocks := lipgloss.JoinHorizontal(lipgloss.Top,
		widgets.CountBlock(icons.Product, "Products", o.Products, fmt.Sprintf("%d active", o.ActiveProducts), cfg),
		" ",
		widgets.CountBlock(icons.Order, "Orders", o.Orders, fmt.Sprintf("%d pending", o.OrdersByStatus[catalog.OrderPending]), cfg),
	)
	sb.WriteString(blocks)
	sb.WriteString("\n\n")

	sb.WriteString("Stock Availability\n")
	pct := o.InStockPercent()
	sb.WriteString(styles.ProgressBar(pct, 20))
	sb.WriteString(fmt.Sprintf(" %.1f%%\n", pct))
	sb.WriteString(fmt.Sprintf("  %d units across %d rows\n", o.Units, o.StockRows))
	if o.OutOfStock > 0 {
		sb.WriteString("  " + widgets.StatusText(fmt.Sprintf("%d out of stock", o.OutOfStock), widgets.StatusCritical) + "\n")
	}
	if o.LowStock > 0 {
		sb.WriteString("  " + widgets.StatusText(fmt.Sprintf("%d running low", o.LowStock), widgets.StatusWarning) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Orders by Status\n")
	for _, status := range catalog.OrderStatuses {
		sb.WriteString(fmt.Sprintf("  %-10s %s\n", status,
			widgets.StatusText(fmt.Sprintf("%d", o.OrdersByStatus[status]), widgets.OrderLevel(status))))
	}
	sb.WriteString(fmt.Sprintf("  Revenue: %s\n", styles.ValueStyle.Render(fmt.Sprintf("Rs %.0f", o.Revenue))))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Brands: %d   Categories: %d   Banners: %d\n", o.Brands, o.Categories, o.Banners))

	return lipgloss.NewStyle().
		Width(d.width).
		MaxHeight(max(d.height, 1)).
		Render(sb.String())
}
