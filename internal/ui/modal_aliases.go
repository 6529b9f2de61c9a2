package ui

import "github.com/zhubert/panta/internal/ui/modals"

// Modal state types used by the app package
type (
	HelpState     = modals.HelpState
	GoToState     = modals.GoToState
	SettingsState = modals.SettingsState

	HelpSection              = modals.HelpSection
	HelpShortcut             = modals.HelpShortcut
	HelpShortcutTriggeredMsg = modals.HelpShortcutTriggeredMsg
	RouteOption              = modals.RouteOption
)

// Constructors
var (
	NewHelpStateFromSections = modals.NewHelpStateFromSections
	NewGoToState             = modals.NewGoToState
	NewSettingsState         = modals.NewSettingsState
)
