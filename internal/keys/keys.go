// Package keys provides string constants for Bubble Tea v2 key press events.
//
// Each value is derived from tea.KeyPressMsg{...}.String() so it always
// matches what the runtime reports. Single printable characters ("q", "?",
// "1") are compared as literals and are not listed here.
package keys

import tea "charm.land/bubbletea/v2"

// Movement
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String()
)

// Actions
var (
	Enter    = tea.KeyPressMsg{Code: tea.KeyEnter}.String()
	Tab      = tea.KeyPressMsg{Code: tea.KeyTab}.String()
	ShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}.String()
	Space    = tea.KeyPressMsg{Code: tea.KeySpace}.String()
	Escape   = tea.KeyPressMsg{Code: tea.KeyEscape}.String()
)

// Shell controls
var (
	CtrlC = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}.String()
	// CtrlB toggles the sidebar collapse.
	CtrlB = tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}.String()
	CtrlN = tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}.String()
	CtrlP = tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}.String()

	// AltLeft and AltRight walk route history.
	AltLeft  = tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModAlt}.String()
	AltRight = tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModAlt}.String()
)
