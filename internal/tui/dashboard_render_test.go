// ABOUTME: Test to verify dashboard screen renders with visible header/footer
// ABOUTME: Ensures content doesn't push header/footer off screen

package tui

import (
	"strings"
	"testing"
)

func TestDashboardRendersWithHeader(t *testing.T) {
	h := newHarness(t, testToken)
	h.start(t)

	if h.app.screen != ScreenDashboard {
		t.Fatalf("Expected ScreenDashboard, got %s", h.app.screen)
	}

	lines := strings.Split(h.app.View(), "\n")

	// Only the first ╭─ is the header, only the last ╰─ is the footer
	headerLineIdx := -1
	footerLineIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "╭─") && headerLineIdx == -1 {
			headerLineIdx = i
		}
		if strings.Contains(line, "╰─") {
			footerLineIdx = i
		}
	}

	if headerLineIdx != 0 {
		t.Errorf("Header should be at line 0, found at %d", headerLineIdx)
	}
	if footerLineIdx != len(lines)-1 {
		t.Errorf("Footer should be at last line, found at %d of %d", footerLineIdx, len(lines))
	}
	if !strings.Contains(lines[0], "Strikers Gear Admin") {
		t.Errorf("Header missing branding: %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "x Logout") {
		t.Errorf("Footer missing dashboard shortcuts: %q", lines[len(lines)-1])
	}
}

func TestResourceScreenShowsStatusLine(t *testing.T) {
	h := newHarness(t, testToken)
	h.start(t)
	h.key(t, "5")
	h.key(t, "d")

	lines := strings.Split(h.app.View(), "\n")
	if !strings.Contains(lines[len(lines)-2], "Delete selected item?") {
		t.Errorf("expected delete prompt above the footer, got %q", lines[len(lines)-2])
	}
}
