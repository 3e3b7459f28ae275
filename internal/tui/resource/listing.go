// ABOUTME: Converts catalog documents into table columns and rows
// ABOUTME: One listing per resource screen, keyed by document id

package resource

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/widgets"
)

// Listing is a table-ready view of one resource
type Listing struct {
	Path    string
	Columns []table.Column
	Rows    []table.Row
	IDs     []string
}

// Len returns the number of rows
func (l Listing) Len() int { return len(l.Rows) }

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func money(v float64) string {
	return fmt.Sprintf("Rs %.0f", v)
}

// Products lists products with category, brand, price, and status
func Products(items []catalog.Product) Listing {
	l := Listing{Path: route.Products, Columns: []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Category", Width: 16},
		{Title: "Brand", Width: 14},
		{Title: "Price", Width: 10},
		{Title: "Status", Width: 9},
	}}
	for _, p := range items {
		l.IDs = append(l.IDs, p.ID)
		l.Rows = append(l.Rows, table.Row{p.Name, p.Category.Display(), p.BrandName(), money(p.Price), widgets.ActiveLabel(p.Active())})
	}
	return l
}

// Stock lists stock rows with their availability label
func Stock(items []catalog.Stock) Listing {
	l := Listing{Path: route.Stock, Columns: []table.Column{
		{Title: "Product", Width: 28},
		{Title: "Size", Width: 12},
		{Title: "Qty", Width: 6},
		{Title: "Status", Width: 13},
	}}
	for _, s := range items {
		l.IDs = append(l.IDs, s.ID)
		l.Rows = append(l.Rows, table.Row{s.Product.Display(), s.Size.Display(), strconv.Itoa(s.Quantity), widgets.StockLabel(s.Quantity)})
	}
	return l
}

// Orders lists orders with customer, total, status, and date
func Orders(items []catalog.Order) Listing {
	l := Listing{Path: route.Orders, Columns: []table.Column{
		{Title: "Order", Width: 9},
		{Title: "Customer", Width: 20},
		{Title: "Phone", Width: 14},
		{Title: "Total", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Date", Width: 10},
	}}
	for _, o := range items {
		date := ""
		if !o.CreatedAt.IsZero() {
			date = o.CreatedAt.Format("2006-01-02")
		}
		l.IDs = append(l.IDs, o.ID)
		l.Rows = append(l.Rows, table.Row{o.ShortID(), o.CustomerName, o.Phone, money(o.TotalAmount), o.Status, date})
	}
	return l
}

// Categories lists categories with slug and status
func Categories(items []catalog.Category) Listing {
	l := Listing{Path: route.Categories, Columns: []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Slug", Width: 20},
		{Title: "Parent", Width: 16},
		{Title: "Status", Width: 9},
	}}
	for _, c := range items {
		parent := ""
		if c.Parent != nil && !c.Parent.IsZero() {
			parent = c.Parent.Display()
		}
		l.IDs = append(l.IDs, c.ID)
		l.Rows = append(l.Rows, table.Row{c.Name, orNA(c.Slug), orNA(parent), widgets.ActiveLabel(c.Active())})
	}
	return l
}

// Brands lists brands with slug and status
func Brands(items []catalog.Brand) Listing {
	l := Listing{Path: route.Brands, Columns: []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Slug", Width: 20},
		{Title: "Status", Width: 9},
	}}
	for _, b := range items {
		l.IDs = append(l.IDs, b.ID)
		l.Rows = append(l.Rows, table.Row{b.Name, orNA(b.Slug), widgets.ActiveLabel(b.Active())})
	}
	return l
}

// Sizes lists sizes with their size type and sort order
func Sizes(items []catalog.Size) Listing {
	l := Listing{Path: route.Sizes, Columns: []table.Column{
		{Title: "Size Type", Width: 18},
		{Title: "Label", Width: 12},
		{Title: "Order", Width: 6},
	}}
	for _, s := range items {
		l.IDs = append(l.IDs, s.ID)
		l.Rows = append(l.Rows, table.Row{s.SizeType.Display(), s.Label, strconv.Itoa(s.SortOrder)})
	}
	return l
}

// Banners lists banners with position and status
func Banners(items []catalog.Banner) Listing {
	l := Listing{Path: route.Banners, Columns: []table.Column{
		{Title: "Title", Width: 24},
		{Title: "Subtitle", Width: 24},
		{Title: "Pos", Width: 5},
		{Title: "Status", Width: 9},
	}}
	for _, b := range items {
		pos := ""
		if b.Position != nil {
			pos = strconv.Itoa(*b.Position)
		}
		l.IDs = append(l.IDs, b.ID)
		l.Rows = append(l.Rows, table.Row{b.Title, b.Subtitle, pos, widgets.ActiveLabel(b.Active())})
	}
	return l
}
