package nav

// IconKind is the closed set of icons the shell can draw.
type IconKind int

const (
	IconNone IconKind = iota
	IconDashboard
	IconChat
	IconAssistant
	IconHistory
	IconTemplates
	IconWorkflow
	IconTrend
	IconStudio
	IconCommunity
	IconTenants
	IconCredits
	IconIntegrations
	IconSettings
	IconHelp
	IconUser
	IconCollapse
	IconExpand
)

var iconGlyphs = map[IconKind]string{
	IconDashboard:    "▦",
	IconChat:         "◌",
	IconAssistant:    "✦",
	IconHistory:      "↺",
	IconTemplates:    "❐",
	IconWorkflow:     "⇶",
	IconTrend:        "↗",
	IconStudio:       "✎",
	IconCommunity:    "☰",
	IconTenants:      "⌂",
	IconCredits:      "¤",
	IconIntegrations: "⇄",
	IconSettings:     "⚙",
	IconHelp:         "?",
	IconUser:         "◉",
	IconCollapse:     "«",
	IconExpand:       "»",
}

// Glyph returns the single-cell character drawn for the icon.
func (k IconKind) Glyph() string {
	if g, ok := iconGlyphs[k]; ok {
		return g
	}
	return "·"
}

// ModeIcon returns the icon used for a mode switch button.
func ModeIcon(m Mode) IconKind {
	switch m {
	case ModeChat:
		return IconChat
	case ModeWorkflow:
		return IconWorkflow
	default:
		return IconDashboard
	}
}

// NavItem is one entry in a navigation list. Items are compared by ID.
type NavItem struct {
	ID    string
	Label string
	Icon  IconKind
	Route string
}

// PrimaryItems returns the links shown in the nav pane and the rail.
func PrimaryItems() []NavItem {
	return []NavItem{
		{ID: "dashboard", Label: "Dashboard", Icon: IconDashboard, Route: "/dashboard"},
		{ID: "templates", Label: "Templates", Icon: IconTemplates, Route: "/templates"},
		{ID: "workflows", Label: "Workflows", Icon: IconWorkflow, Route: "/workflows"},
		{ID: "trendcast", Label: "Trendcast", Icon: IconTrend, Route: "/trendcast"},
		{ID: "content-studio", Label: "Content Studio", Icon: IconStudio, Route: "/content-studio"},
		{ID: "community", Label: "Community", Icon: IconCommunity, Route: "/community"},
		{ID: "integrations", Label: "Integrations", Icon: IconIntegrations, Route: "/integrations"},
		{ID: "tenants", Label: "Tenants", Icon: IconTenants, Route: "/admin/tenants"},
		{ID: "credits", Label: "Credit Usage", Icon: IconCredits, Route: "/admin/credits"},
	}
}

// BottomItems returns the static links pinned above the profile button.
func BottomItems() []NavItem {
	return []NavItem{
		{ID: "settings", Label: "Settings", Icon: IconSettings, Route: "/settings"},
		{ID: "help", Label: "Help", Icon: IconHelp, Route: "/help"},
	}
}

// ProfileItem is the user profile button.
func ProfileItem() NavItem {
	return NavItem{ID: "profile", Label: "Profile", Icon: IconUser, Route: "/profile"}
}

// FindItem looks up an item by ID across the primary and bottom lists.
func FindItem(id string) (NavItem, bool) {
	for _, it := range append(PrimaryItems(), append(BottomItems(), ProfileItem())...) {
		if it.ID == id {
			return it, true
		}
	}
	return NavItem{}, false
}

// KnownRoutes returns every route reachable from a nav item, in order.
func KnownRoutes() []string {
	var routes []string
	seen := make(map[string]bool)
	for _, it := range append(PrimaryItems(), append(BottomItems(), ProfileItem())...) {
		if it.Route != "" && !seen[it.Route] {
			seen[it.Route] = true
			routes = append(routes, it.Route)
		}
	}
	return routes
}
