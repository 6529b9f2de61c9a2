package nav

import "strings"

// Resolver maps a route path to the sidebar mode it shows by default.
type Resolver struct {
	table RouteTable
}

// NewResolver copies table so later changes by the caller are not observed.
func NewResolver(table RouteTable) *Resolver {
	return &Resolver{table: table.WithOverrides(nil, nil)}
}

// Table returns a copy of the resolver's route lists.
func (r *Resolver) Table() RouteTable {
	return r.table.WithOverrides(nil, nil)
}

// Resolve returns the mode for path. Chat prefixes are checked before
// workflow prefixes, so a path matching both resolves to chat.
func (r *Resolver) Resolve(path string) Mode {
	if hasAnyPrefix(path, r.table.Chat) {
		return ModeChat
	}
	if hasAnyPrefix(path, r.table.Workflow) {
		return ModeWorkflow
	}
	return ModeNav
}

// Available returns the modes path exposes: nav, followed by the resolved
// mode when it is not nav.
func (r *Resolver) Available(path string) []Mode {
	if m := r.Resolve(path); m != ModeNav {
		return []Mode{ModeNav, m}
	}
	return []Mode{ModeNav}
}

// Exposes reports whether mode may be selected while on path.
func (r *Resolver) Exposes(path string, mode Mode) bool {
	return mode == ModeNav || mode == r.Resolve(path)
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
