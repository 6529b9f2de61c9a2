package nav

import (
	"testing"

	pantaerrors "github.com/zhubert/panta/internal/errors"
)

func newTestShell(route string) *Shell {
	return NewShell(NewResolver(DefaultRouteTable()), route)
}

func TestShell_ModeFollowsRoute(t *testing.T) {
	s := newTestShell("/settings")
	if s.Mode() != ModeNav {
		t.Errorf("Mode() = %v, want nav", s.Mode())
	}

	s.SetRoute("/trendcast")
	if s.Mode() != ModeWorkflow {
		t.Errorf("Mode() = %v, want workflow", s.Mode())
	}

	s.SetRoute("/dashboard")
	if s.Mode() != ModeChat {
		t.Errorf("Mode() = %v, want chat", s.Mode())
	}
}

func TestShell_OverrideScopedToRoute(t *testing.T) {
	s := newTestShell("/dashboard")

	if err := s.SetOverride(ModeNav); err != nil {
		t.Fatalf("SetOverride(nav) error = %v", err)
	}
	if s.Mode() != ModeNav || !s.Overridden() {
		t.Errorf("Mode() = %v overridden=%v, want nav override", s.Mode(), s.Overridden())
	}

	s.SetRoute("/chat")
	if s.Overridden() {
		t.Error("override should reset on route change")
	}
	if s.Mode() != ModeChat {
		t.Errorf("Mode() = %v, want chat", s.Mode())
	}
}

func TestShell_OverrideRejectsUnexposedMode(t *testing.T) {
	s := newTestShell("/settings")

	err := s.SetOverride(ModeWorkflow)
	if err == nil {
		t.Fatal("expected error selecting workflow on /settings")
	}
	if !pantaerrors.Is(err, pantaerrors.KindRoute) {
		t.Errorf("kind = %v, want route", pantaerrors.GetKind(err))
	}
	if s.Mode() != ModeNav {
		t.Errorf("Mode() = %v, want nav after rejected override", s.Mode())
	}
}

func TestShell_OverrideToResolvedModeClears(t *testing.T) {
	s := newTestShell("/trendcast")
	_ = s.SetOverride(ModeNav)
	_ = s.SetOverride(ModeWorkflow)

	if s.Overridden() {
		t.Error("selecting the resolved mode should clear the override")
	}
}

func TestShell_CycleMode(t *testing.T) {
	s := newTestShell("/trendcast")

	if got := s.CycleMode(); got != ModeNav {
		t.Errorf("first cycle = %v, want nav", got)
	}
	if got := s.CycleMode(); got != ModeWorkflow {
		t.Errorf("second cycle = %v, want workflow", got)
	}

	s.SetRoute("/settings")
	if got := s.CycleMode(); got != ModeNav {
		t.Errorf("cycle on nav-only route = %v, want nav", got)
	}
}

func TestShell_CollapseIndependentOfRoute(t *testing.T) {
	s := newTestShell("/dashboard")
	if s.Collapsed() {
		t.Fatal("shell should start expanded")
	}

	s.Collapse()
	s.SetRoute("/trendcast")
	if !s.Collapsed() {
		t.Error("route change should not expand the shell")
	}

	s.Expand()
	if s.Collapsed() {
		t.Error("Expand() should clear collapse")
	}
}

func TestShell_DoubleToggleRestores(t *testing.T) {
	s := newTestShell("/dashboard")
	before := s.Collapsed()

	if !s.ToggleCollapse() {
		t.Error("first toggle should collapse")
	}
	if s.ToggleCollapse() {
		t.Error("second toggle should expand")
	}
	if s.Collapsed() != before {
		t.Errorf("Collapsed() = %v after double toggle, want %v", s.Collapsed(), before)
	}
}
