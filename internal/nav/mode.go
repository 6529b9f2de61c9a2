// Package nav holds the navigation state behind the panta shell: the route
// table and mode resolver, the sidebar shell state (mode override and
// collapse flag), the nav item catalog and the route history.
package nav

import "fmt"

// Mode is the sidebar content mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeChat
	ModeWorkflow
)

func (m Mode) String() string {
	switch m {
	case ModeChat:
		return "chat"
	case ModeWorkflow:
		return "workflow"
	default:
		return "nav"
	}
}

// Modes lists every mode in display order.
var Modes = []Mode{ModeNav, ModeChat, ModeWorkflow}

// ParseMode converts a mode name back to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeNav, fmt.Errorf("unknown mode %q", s)
}
