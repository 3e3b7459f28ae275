// ABOUTME: Screen paths shared by guards, navigation, and the TUI
// ABOUTME: Classifies each path as a guest entry point or a protected page

package route

import "strings"

// Entry points and default landing page
const (
	Login     = "/login"
	Register  = "/register"
	Dashboard = "/dashboard/default"
)

// Protected resource pages
const (
	Products   = "/products"
	Stock      = "/stock"
	Orders     = "/orders"
	Categories = "/categories"
	Brands     = "/brands"
	Sizes      = "/sizes"
	Banners    = "/banners"
)

// Resources lists the resource pages in menu order
var Resources = []string{Products, Stock, Orders, Categories, Brands, Sizes, Banners}

// IsGuest reports whether path is a login/registration entry point.
// Everything else, including unknown paths, is protected.
func IsGuest(path string) bool {
	switch normalize(path) {
	case Login, Register:
		return true
	}
	return false
}

// Title returns a human-readable title for a screen path
func Title(path string) string {
	switch normalize(path) {
	case Login:
		return "Login"
	case Register:
		return "Create admin"
	case Dashboard, "/":
		return "Dashboard"
	case Products:
		return "Products"
	case Stock:
		return "Stock"
	case Orders:
		return "Orders"
	case Categories:
		return "Categories"
	case Brands:
		return "Brands"
	case Sizes:
		return "Sizes"
	case Banners:
		return "Banners"
	default:
		return strings.TrimPrefix(path, "/")
	}
}

func normalize(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
