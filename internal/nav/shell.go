package nav

import (
	pantaerrors "github.com/zhubert/panta/internal/errors"
	"github.com/zhubert/panta/internal/logger"
)

// Shell is the sidebar state: the current route, an optional mode override
// scoped to that route, and the collapse flag.
//
// The active mode is always Resolve(route) unless an override for a mode the
// route exposes is set. The collapse flag is independent of routing.
type Shell struct {
	resolver  *Resolver
	route     string
	override  *Mode
	collapsed bool
}

// NewShell returns an expanded shell on route.
func NewShell(resolver *Resolver, route string) *Shell {
	return &Shell{resolver: resolver, route: route}
}

// Route returns the current route path.
func (s *Shell) Route() string {
	return s.route
}

// Resolver returns the resolver backing the shell.
func (s *Shell) Resolver() *Resolver {
	return s.resolver
}

// SetRoute moves the shell to path and drops any mode override.
func (s *Shell) SetRoute(path string) {
	if path == s.route {
		return
	}
	s.route = path
	s.override = nil
	logger.WithComponent("nav").Debug("route changed", "path", path, "mode", s.Mode())
}

// Mode returns the active mode.
func (s *Shell) Mode() Mode {
	if s.override != nil {
		return *s.override
	}
	return s.resolver.Resolve(s.route)
}

// Overridden reports whether the user picked the active mode explicitly.
func (s *Shell) Overridden() bool {
	return s.override != nil
}

// Available returns the modes the current route exposes.
func (s *Shell) Available() []Mode {
	return s.resolver.Available(s.route)
}

// SetOverride selects mode for the current route. Selecting a mode the route
// does not expose returns an error and leaves the shell unchanged.
func (s *Shell) SetOverride(mode Mode) error {
	if !s.resolver.Exposes(s.route, mode) {
		return pantaerrors.ModeUnavailable(mode.String(), s.route)
	}
	if mode == s.resolver.Resolve(s.route) {
		s.override = nil
		return nil
	}
	s.override = &mode
	return nil
}

// CycleMode switches to the next exposed mode, wrapping around.
func (s *Shell) CycleMode() Mode {
	modes := s.Available()
	current := s.Mode()
	next := modes[0]
	for i, m := range modes {
		if m == current {
			next = modes[(i+1)%len(modes)]
			break
		}
	}
	// next is always exposed
	_ = s.SetOverride(next)
	return s.Mode()
}

// Collapse hides the full panel behind the icon rail.
func (s *Shell) Collapse() { s.collapsed = true }

// Expand restores the full panel.
func (s *Shell) Expand() { s.collapsed = false }

// ToggleCollapse flips the collapse flag and returns the new value.
func (s *Shell) ToggleCollapse() bool {
	s.collapsed = !s.collapsed
	return s.collapsed
}

// Collapsed reports whether the shell shows only the icon rail.
func (s *Shell) Collapsed() bool {
	return s.collapsed
}
