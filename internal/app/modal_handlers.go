package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/keys"
	"github.com/zhubert/panta/internal/logger"
	"github.com/zhubert/panta/internal/ui"
)

// showModal opens state sized to the current terminal.
func (m *Model) showModal(state ui.ModalState) {
	m.modal.SetScreenSize(m.width, m.height)
	m.modal.Show(state)
}

// handleModalKey routes modal key events to the handler for the modal type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *ui.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *ui.GoToState:
		return m.handleGoToModal(key, msg, s)
	case *ui.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *ui.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return ui.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger runs a shortcut picked in the help modal.
func (m *Model) handleHelpShortcutTrigger(display string) (tea.Model, tea.Cmd) {
	key := keyForDisplay(display)
	if key == "" {
		return m, nil
	}
	result, cmd, _ := m.ExecuteShortcut(key)
	return result, cmd
}

func (m *Model) handleGoToModal(key string, msg tea.KeyPressMsg, state *ui.GoToState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		route := state.SelectedRoute()
		m.modal.Hide()
		if !state.Changed() {
			return m, nil
		}
		return m, m.navigate(route)
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *ui.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if err := state.Validate(); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		name, email := state.GetUser()
		m.config.SetUser(name, email)
		m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())
		m.sidebar.SetUser(name, email)
		if state.ThemeChanged() {
			theme := ui.ThemeName(state.GetSelectedTheme())
			ui.SetTheme(theme)
			m.config.SetTheme(string(theme))
			m.page.Refresh()
		}
		if err := m.config.Save(); err != nil {
			logger.WithComponent("app").Error("failed to save settings", "error", err)
			m.modal.SetError("Failed to save: " + err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, m.ShowFlashSuccess("Settings saved")
	}
	// Forward other keys to the form
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
