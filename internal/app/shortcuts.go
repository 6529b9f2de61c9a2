package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/keys"
	"github.com/zhubert/panta/internal/logger"
	"github.com/zhubert/panta/internal/nav"
	"github.com/zhubert/panta/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "g", "ctrl+b")
	DisplayKey  string                              // Display name in help; defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional guard
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryShell      = "Shell"
	CategoryWorkflow   = "Workflow"
	CategoryGeneral    = "General"
)

var categoryOrder = []string{
	CategoryNavigation,
	CategoryShell,
	CategoryWorkflow,
	CategoryGeneral,
}

func onWorkflowRun(m *Model) bool { return m.activeRun() != nil }

// ShortcutRegistry is the central registry of keyboard shortcuts. Entries
// appear in the help modal and can be run from it.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		Description: "Switch between sidebar and page",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:         "g",
		Description: "Go to route",
		Category:    CategoryNavigation,
		Handler:     shortcutGoTo,
	},
	{
		Key:         keys.AltLeft,
		DisplayKey:  "alt+←",
		Description: "Back",
		Category:    CategoryNavigation,
		Handler:     shortcutBack,
	},
	{
		Key:         keys.AltRight,
		DisplayKey:  "alt+→",
		Description: "Forward",
		Category:    CategoryNavigation,
		Handler:     shortcutForward,
	},
	{
		Key:         "y",
		Description: "Copy current route",
		Category:    CategoryNavigation,
		Handler:     shortcutCopyRoute,
	},

	// Shell
	{
		Key:         keys.CtrlB,
		Description: "Collapse or expand sidebar",
		Category:    CategoryShell,
		Handler:     shortcutToggleCollapse,
	},
	{
		Key:         "m",
		Description: "Next sidebar mode",
		Category:    CategoryShell,
		Handler:     shortcutCycleMode,
		Condition:   func(m *Model) bool { return len(m.shell.Available()) > 1 },
	},
	{
		Key:         "1",
		Description: "Navigation pane",
		Category:    CategoryShell,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.setMode(nav.ModeNav) },
	},
	{
		Key:         "2",
		Description: "Chat pane",
		Category:    CategoryShell,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.setMode(nav.ModeChat) },
	},
	{
		Key:         "3",
		Description: "Workflow pane",
		Category:    CategoryShell,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.setMode(nav.ModeWorkflow) },
	},

	// Workflow
	{
		Key:         "n",
		Description: "Complete current step",
		Category:    CategoryWorkflow,
		Handler:     shortcutNextStep,
		Condition:   onWorkflowRun,
	},
	{
		Key:         "p",
		Description: "Reopen previous step",
		Category:    CategoryWorkflow,
		Handler:     shortcutPrevStep,
		Condition:   onWorkflowRun,
	},
	{
		Key:         "r",
		Description: "Restart workflow",
		Category:    CategoryWorkflow,
		Handler:     shortcutResetRun,
		Condition:   onWorkflowRun,
	},

	// General
	{
		Key:         "s",
		Description: "Settings",
		Category:    CategoryGeneral,
		Handler:     shortcutSettings,
	},
	{
		Key:         "q",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid an initialization cycle:
// its handler reads ShortcutRegistry.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Move in sidebar", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Open selected item", Category: CategoryNavigation},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll page", Category: CategoryNavigation},
	{DisplayKey: "/", Description: "Filter chat history", Category: CategoryShell},
	{DisplayKey: "Space", Description: "Fold chat section", Category: CategoryShell},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	return s.Condition == nil || s.Condition(m)
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and its guard passed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	log := logger.WithComponent("shortcuts")

	if m.sidebar.IsFiltering() {
		return m, nil, false
	}

	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			log.Debug("shortcut guard failed", "key", key)
			return m, nil, false
		}
		log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// keyForDisplay maps a help modal display key back to its binding. Returns
// "" for display-only entries.
func keyForDisplay(display string) string {
	if display == helpShortcut.Key {
		return display
	}
	for _, s := range ShortcutRegistry {
		if s.DisplayKey == display || (s.DisplayKey == "" && s.Key == display) {
			return s.Key
		}
	}
	return ""
}

// getApplicableHelpSections builds help sections from the shortcuts whose
// guards currently pass, in category order.
func (m *Model) getApplicableHelpSections() []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)
	add := func(s Shortcut) {
		display := s.DisplayKey
		if display == "" {
			display = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{Key: display, Desc: s.Description})
	}

	for _, s := range ShortcutRegistry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	add(helpShortcut)
	for _, s := range DisplayOnlyShortcuts {
		add(s)
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutGoTo(m *Model) (tea.Model, tea.Cmd) {
	m.showModal(ui.NewGoToState(m.routeOptions(), m.router.Current()))
	return m, nil
}

func shortcutBack(m *Model) (tea.Model, tea.Cmd) {
	return m, m.back()
}

func shortcutForward(m *Model) (tea.Model, tea.Cmd) {
	return m, m.forward()
}

func shortcutCopyRoute(m *Model) (tea.Model, tea.Cmd) {
	return m, copyToClipboard(m.router.Current())
}

func shortcutToggleCollapse(m *Model) (tea.Model, tea.Cmd) {
	collapsed := m.shell.ToggleCollapse()
	logger.WithComponent("app").Debug("sidebar collapse toggled", "collapsed", collapsed)
	m.updateSizes()
	return m, nil
}

func shortcutCycleMode(m *Model) (tea.Model, tea.Cmd) {
	m.shell.CycleMode()
	return m, nil
}

func shortcutNextStep(m *Model) (tea.Model, tea.Cmd) {
	return m, m.advanceWorkflow()
}

func shortcutPrevStep(m *Model) (tea.Model, tea.Cmd) {
	return m, m.reopenWorkflowStep()
}

func shortcutResetRun(m *Model) (tea.Model, tea.Cmd) {
	return m, m.resetWorkflow()
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	display := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
		display[i] = ui.GetTheme(n).Name
	}
	name, email := m.config.GetUser()
	m.showModal(ui.NewSettingsState(themes, display, string(ui.CurrentThemeName()),
		m.config.GetNotificationsEnabled(), name, email))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.showModal(ui.NewHelpStateFromSections(m.getApplicableHelpSections()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
