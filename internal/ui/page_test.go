package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/catalog"
)

func TestPage_RendersMarkdownBody(t *testing.T) {
	p := NewPage()
	p.SetSize(70, 20)
	p.SetPage(catalog.Page{Route: "/help", Title: "Help", Body: "# Help\n\nPress **?** for shortcuts."})

	view := stripANSI(p.View())
	if !strings.Contains(view, "Help") {
		t.Errorf("expected heading in view:\n%s", view)
	}
	if !strings.Contains(view, "for shortcuts") {
		t.Errorf("expected body text in view:\n%s", view)
	}
	if strings.Contains(view, "**") {
		t.Error("markdown emphasis should be rendered, not shown raw")
	}
	if p.Current().Route != "/help" {
		t.Errorf("Current().Route = %q", p.Current().Route)
	}
}

func TestPage_ExtraAppendedAndClearedOnNewPage(t *testing.T) {
	p := NewPage()
	p.SetSize(70, 30)
	p.SetPage(catalog.Page{Route: "/trendcast", Body: "# Trendcast"})
	p.SetExtra("Current step: **Research**")

	if view := stripANSI(p.View()); !strings.Contains(view, "Current step") {
		t.Errorf("expected extra content:\n%s", view)
	}

	p.SetPage(catalog.Page{Route: "/dashboard", Body: "# Dashboard"})
	if view := stripANSI(p.View()); strings.Contains(view, "Current step") {
		t.Error("extra content should be cleared by SetPage")
	}
}

func TestPage_UnfocusedIgnoresKeys(t *testing.T) {
	p := NewPage()
	p.SetSize(70, 10)
	p.SetPage(catalog.Page{Body: strings.Repeat("line\n\n", 40)})

	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	if p.viewport.YOffset() != 0 {
		t.Errorf("unfocused page scrolled to %d", p.viewport.YOffset())
	}

	p.SetFocused(true)
	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	if p.viewport.YOffset() == 0 {
		t.Error("focused page should scroll on pgdown")
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if got := renderMarkdown("\n\n", 40, true); got != "" {
		t.Errorf("renderMarkdown(empty) = %q, want empty", got)
	}
}
