// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

// EnvNerdFonts forces Nerd Font icons on ("1"/"true") or off
const EnvNerdFonts = "STRIKERSGEAR_NERD_FONTS"

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	if env := os.Getenv(EnvNerdFonts); env != "" {
		return env == "1" || strings.ToLower(env) == "true"
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	nerdFontTerminals := []string{
		"iTerm.app",
		"alacritty",
		"WezTerm",
		"kitty",
		"ghostty",
	}

	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	if os.Getenv("NERD_FONTS") == "1" {
		return true
	}

	return false
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Catalog resources
	Product  = Icon{"󰏗", "◆"} // nf-md-package_variant
	Stock    = Icon{"󰋁", "▮"} // nf-md-database
	Order    = Icon{"󰄐", "■"} // nf-md-cart
	Category = Icon{"󰓹", "▣"} // nf-md-tag_multiple
	Brand    = Icon{"󰓼", "★"} // nf-md-star_circle
	Size     = Icon{"󰆾", "□"} // nf-md-ruler
	Banner   = Icon{"󰋩", "▭"} // nf-md-image

	// Status indicators
	CheckOK  = Icon{"", "✓"} // nf-oct-check_circle
	Warning  = Icon{"", "⚠"} // nf-oct-alert
	Critical = Icon{"", "✗"} // nf-oct-x_circle
	Info     = Icon{"", "ℹ"} // nf-oct-info

	// Actions
	Refresh = Icon{"󰑓", "↻"} // nf-md-refresh
	Back    = Icon{"󰁍", "←"} // nf-md-arrow_left
	Quit    = Icon{"󰗼", "×"} // nf-md-exit_to_app
	Logout  = Icon{"󰍃", "⏻"} // nf-md-logout
	Delete  = Icon{"󰆴", "⌫"} // nf-md-delete
	Edit    = Icon{"󰏫", "✎"} // nf-md-pencil

	// Application
	App      = Icon{"󰒚", "◈"} // nf-md-shopping
	Settings = Icon{"󰒓", "⚙"} // nf-md-cog
	Lock     = Icon{"󰌾", "⚿"} // nf-md-lock
)

// ForRoute returns the icon for a resource screen path
func ForRoute(path string) Icon {
	switch path {
	case "/products":
		return Product
	case "/stock":
		return Stock
	case "/orders":
		return Order
	case "/categories":
		return Category
	case "/brands":
		return Brand
	case "/sizes":
		return Size
	case "/banners":
		return Banner
	default:
		return App
	}
}
