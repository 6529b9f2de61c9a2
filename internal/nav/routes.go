package nav

// RouteTable is the pair of prefix allow-lists the Resolver matches against.
type RouteTable struct {
	Chat     []string
	Workflow []string
}

// DefaultRouteTable returns the built-in route lists.
func DefaultRouteTable() RouteTable {
	return RouteTable{
		Chat:     []string{"/dashboard", "/chat", "/assistants"},
		Workflow: []string{"/trendcast", "/content-studio", "/workflows/run"},
	}
}

// WithOverrides returns a copy of t where each non-empty list replaces the
// corresponding built-in list.
func (t RouteTable) WithOverrides(chat, workflow []string) RouteTable {
	out := RouteTable{
		Chat:     append([]string(nil), t.Chat...),
		Workflow: append([]string(nil), t.Workflow...),
	}
	if len(chat) > 0 {
		out.Chat = append([]string(nil), chat...)
	}
	if len(workflow) > 0 {
		out.Workflow = append([]string(nil), workflow...)
	}
	return out
}
