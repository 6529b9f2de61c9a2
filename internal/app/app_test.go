package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/zhubert/panta/internal/clipboard"
	pantaerrors "github.com/zhubert/panta/internal/errors"
	"github.com/zhubert/panta/internal/nav"
	"github.com/zhubert/panta/internal/notification"
	"github.com/zhubert/panta/internal/ui"
)

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lineContaining(view, needle string) string {
	for _, l := range strings.Split(view, "\n") {
		if strings.Contains(l, needle) {
			return l
		}
	}
	return ""
}

func TestNew_InvalidStartRouteFallsBack(t *testing.T) {
	m := testModel(t, "bad path")
	if m.Route() != "/dashboard" {
		t.Errorf("Route() = %q, want /dashboard", m.Route())
	}
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := testModel(t, "/dashboard")
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("RenderToString() = %q, want Loading...", got)
	}
}

func TestTrendcastShowsWorkflowProgress(t *testing.T) {
	m := testModelWithSize(t, "/trendcast", 120, 40)
	if m.Mode() != nav.ModeWorkflow {
		t.Fatalf("Mode() = %v, want workflow", m.Mode())
	}

	m = sendKey(m, "n")
	view := stripANSI(m.RenderToString())

	if !strings.Contains(view, "2 / 3") {
		t.Errorf("expected progress 2 / 3 in view:\n%s", view)
	}
	// The page pane shares frame rows with the sidebar, so step markers are
	// checked on the sidebar alone.
	sidebar := stripANSI(m.Sidebar().View())
	if l := lineContaining(sidebar, "Research"); !strings.Contains(l, "●") {
		t.Errorf("Research should be the current step, got line %q", l)
	}
	if l := lineContaining(sidebar, "Pick a topic"); !strings.Contains(l, "✓") {
		t.Errorf("Pick a topic should be completed, got line %q", l)
	}
	if !strings.Contains(view, "Step 2: Research") {
		t.Errorf("expected step card for Research:\n%s", view)
	}
}

func TestDashboardShowsChatPane(t *testing.T) {
	m := testModelWithSize(t, "/dashboard", 120, 40)
	if m.Mode() != nav.ModeChat {
		t.Fatalf("Mode() = %v, want chat", m.Mode())
	}
	view := stripANSI(m.RenderToString())
	for _, want := range []string{"Assistants", "History", "Copywriter", "Q3 launch announcement"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCollapseToggle(t *testing.T) {
	m := testModelWithSize(t, "/dashboard", 120, 40)
	before := m.RenderToString()

	m = sendKey(m, "ctrl+b")
	if !m.Collapsed() {
		t.Fatal("expected sidebar collapsed")
	}
	if w := m.sidebar.Width(); w != ui.RailWidth {
		t.Errorf("sidebar width = %d, want %d", w, ui.RailWidth)
	}
	if strings.Contains(stripANSI(m.RenderToString()), "Q3 launch announcement") {
		t.Error("collapsed rail should not list history")
	}

	m = sendKey(m, "ctrl+b")
	if m.Collapsed() {
		t.Fatal("expected sidebar expanded")
	}
	if after := m.RenderToString(); after != before {
		t.Error("double toggle should restore the frame")
	}
}

func TestModeOverride(t *testing.T) {
	m := testModelWithSize(t, "/dashboard", 120, 40)

	m = sendKey(m, "1")
	if m.Mode() != nav.ModeNav {
		t.Fatalf("Mode() = %v, want nav after override", m.Mode())
	}

	// Unavailable mode leaves the override alone and warns
	m = sendKey(m, "3")
	if m.Mode() != nav.ModeNav {
		t.Errorf("Mode() = %v, want nav after rejected override", m.Mode())
	}
	if f := m.footer.Flash(); f == nil || f.Type != ui.FlashWarning {
		t.Errorf("expected warning flash for unavailable mode, got %+v", f)
	}

	// Navigating clears the override
	m = runCmd(m, ui.Navigate("/chat"))
	if m.Mode() != nav.ModeChat {
		t.Errorf("Mode() = %v, want chat after navigation", m.Mode())
	}
}

func TestNavigateInvalidPathFlashes(t *testing.T) {
	m := testModelWithSize(t, "/dashboard", 120, 40)
	m = runCmd(m, ui.Navigate("bad path"))
	if m.Route() != "/dashboard" {
		t.Errorf("Route() = %q, want /dashboard", m.Route())
	}
	if f := m.footer.Flash(); f == nil || f.Type != ui.FlashWarning {
		t.Errorf("expected warning flash for invalid route, got %+v", f)
	}
}

func TestHistoryBackForward(t *testing.T) {
	m := testModelWithSize(t, "/dashboard", 120, 40)
	m = runCmd(m, ui.Navigate("/trendcast"))

	m = sendKey(m, "alt+left")
	if m.Route() != "/dashboard" {
		t.Fatalf("Route() after back = %q, want /dashboard", m.Route())
	}
	if m.Mode() != nav.ModeChat {
		t.Errorf("Mode() after back = %v, want chat", m.Mode())
	}

	m = sendKey(m, "alt+right")
	if m.Route() != "/trendcast" {
		t.Errorf("Route() after forward = %q, want /trendcast", m.Route())
	}
}

func TestSidebarEnterNavigates(t *testing.T) {
	m := testModelWithSize(t, "/templates", 120, 40)
	if m.Mode() != nav.ModeNav {
		t.Fatalf("Mode() = %v, want nav", m.Mode())
	}
	m = sendKey(m, "up")
	route := m.sidebar.SelectedRoute()

	m, cmd := sendKeyCmd(m, "enter")
	m = runCmd(m, cmd)
	if m.Route() != route {
		t.Errorf("Route() = %q, want %q", m.Route(), route)
	}
}

func TestWorkflowRunPersistsAcrossRoutes(t *testing.T) {
	m := testModelWithSize(t, "/trendcast", 120, 40)
	m = sendKey(m, "n")
	m = runCmd(m, ui.Navigate("/dashboard"))
	m = runCmd(m, ui.Navigate("/trendcast"))

	if got := m.activeRun().Cursor(); got != 1 {
		t.Errorf("Cursor() = %d, want 1 after returning", got)
	}

	m = sendKey(m, "p")
	if got := m.activeRun().Cursor(); got != 0 {
		t.Errorf("Cursor() = %d, want 0 after p", got)
	}

	m = sendKey(m, "n")
	m = sendKey(m, "r")
	if got := m.activeRun().Cursor(); got != 0 {
		t.Errorf("Cursor() = %d, want 0 after reset", got)
	}
}

func TestWorkflowCompletionNotifies(t *testing.T) {
	var got string
	notification.SetNotifier(func(title, message string, _ any) error {
		got = message
		return nil
	})
	defer notification.ResetNotifier()

	m := testModelWithSize(t, "/trendcast", 120, 40)
	m.config.SetNotificationsEnabled(true)

	m = sendKey(m, "n")
	m = sendKey(m, "n")
	_, cmd := sendKeyCmd(m, "n")
	if !m.activeRun().Done() {
		t.Fatal("expected run done")
	}
	if cmd == nil {
		t.Fatal("expected completion command")
	}
	// The batch holds the flash tick and the notification
	for _, c := range flattenBatch(cmd()) {
		if c == nil {
			continue
		}
		if sent, ok := c().(NotificationSentMsg); ok && sent.Err != nil {
			t.Errorf("notification error: %v", sent.Err)
		}
	}
	if got != "Trendcast is complete" {
		t.Errorf("notification message = %q", got)
	}

	view := stripANSI(m.RenderToString())
	if !strings.Contains(view, "3 / 3") {
		t.Errorf("done run should show 3 / 3:\n%s", view)
	}
}

func TestWorkflowShortcutsNeedRun(t *testing.T) {
	m := testModelWithSize(t, "/dashboard", 120, 40)
	if _, _, handled := m.ExecuteShortcut("n"); handled {
		t.Error("n should not run outside a workflow route")
	}
}

func TestCopyRoute(t *testing.T) {
	var copied string
	restore := clipboard.SetWriter(func(text string) error {
		copied = text
		return nil
	})
	defer restore()

	m := testModelWithSize(t, "/trendcast", 120, 40)
	m, cmd := sendKeyCmd(m, "y")
	m = runCmd(m, cmd)
	if copied != "/trendcast" {
		t.Errorf("copied %q, want /trendcast", copied)
	}
	if !m.footer.HasFlash() {
		t.Error("expected success flash")
	}
}

func TestCopyRouteUnavailable(t *testing.T) {
	restore := clipboard.SetWriter(func(string) error { return errors.New("no display") })
	defer restore()

	m := testModelWithSize(t, "/dashboard", 120, 40)
	m, cmd := sendKeyCmd(m, "y")
	m = runCmd(m, cmd)
	if f := m.footer.Flash(); f == nil || f.Type != ui.FlashError {
		t.Errorf("expected error flash, got %+v", f)
	}
}

func TestTabSwitchesFocus(t *testing.T) {
	m := testModelWithSize(t, "/dashboard", 120, 40)
	m = sendKey(m, "tab")
	if m.Focus() != FocusPage {
		t.Errorf("Focus() = %v, want page", m.Focus())
	}
	m = sendKey(m, "tab")
	if m.Focus() != FocusSidebar {
		t.Errorf("Focus() = %v, want sidebar", m.Focus())
	}
}

func TestFilterSwallowsShortcuts(t *testing.T) {
	m := testModelWithSize(t, "/dashboard", 120, 40)
	m = sendKey(m, "/")
	if !m.sidebar.IsFiltering() {
		t.Fatal("expected filter active")
	}
	m = sendKey(m, "q")
	if m.sidebar.FilterQuery() != "q" {
		t.Errorf("FilterQuery() = %q, want q", m.sidebar.FilterQuery())
	}
}

func TestShowFlashForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ui.FlashType
	}{
		{"invalid route", pantaerrors.RouteInvalid("bad path"), ui.FlashWarning},
		{"mode unavailable", pantaerrors.ModeUnavailable("chat", "/trendcast"), ui.FlashWarning},
		{"clipboard", pantaerrors.ClipboardUnavailable(errors.New("no display")), ui.FlashWarning},
		{"config", pantaerrors.ConfigSaveFailed("/tmp/config.json", errors.New("read-only")), ui.FlashError},
		{"unstructured", errors.New("boom"), ui.FlashError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(t, "/dashboard", 120, 40)
			if cmd := m.ShowFlashForError(tt.err); cmd == nil {
				t.Error("expected flash tick command")
			}
			f := m.footer.Flash()
			if f == nil {
				t.Fatal("expected flash")
			}
			if f.Type != tt.want {
				t.Errorf("flash type = %v, want %v", f.Type, tt.want)
			}
			if f.Text != tt.err.Error() {
				t.Errorf("flash text = %q, want %q", f.Text, tt.err.Error())
			}
		})
	}
}
