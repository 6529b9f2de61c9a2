package ui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestHeader_View_TitleOnly(t *testing.T) {
	header := NewHeader()
	header.SetWidth(40)

	view := stripANSI(header.View())
	if !strings.HasPrefix(view, " panta") {
		t.Errorf("header should start with title, got %q", view)
	}
	if runewidth.StringWidth(view) != 40 {
		t.Errorf("header width = %d, want 40", runewidth.StringWidth(view))
	}
}

func TestHeader_View_WithPage(t *testing.T) {
	header := NewHeader()
	header.SetWidth(60)
	header.SetPage("Trendcast", "/trendcast")

	view := stripANSI(header.View())
	if !strings.Contains(view, "Trendcast (/trendcast)") {
		t.Errorf("header should show page and route, got %q", view)
	}
}

func TestHeader_View_Narrow(t *testing.T) {
	header := NewHeader()
	header.SetWidth(10)
	header.SetPage("A very long page title", "/somewhere/deep")

	view := stripANSI(header.View())
	if runewidth.StringWidth(view) > 10 {
		t.Errorf("header should be truncated to width, got %q", view)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"bogus", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d", tt.hex, r, g, b)
		}
	}
}
