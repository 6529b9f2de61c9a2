package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/keys"
	"github.com/zhubert/panta/internal/logger"
	"github.com/zhubert/panta/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Not handled globally, fall through to the focused panel

	case ui.NavigateMsg:
		return m, m.navigate(msg.Path)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case ui.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case NotificationSentMsg:
		if msg.Err != nil {
			return m, m.ShowFlashWarning("Notification failed: " + msg.Err.Error())
		}
		return m, nil

	case ClipboardWrittenMsg:
		if msg.Err != nil {
			return m, m.ShowFlashForError(msg.Err)
		}
		return m, m.ShowFlashSuccess("Copied " + msg.Text)

	case tea.MouseWheelMsg:
		page, cmd := m.page.Update(msg)
		m.page = page
		return m, cmd
	}

	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		cmds = append(cmds, cmd)
	} else {
		page, cmd := m.page.Update(msg)
		m.page = page
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles global keys. A nil model means the key was not
// consumed and should reach the focused panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.WithComponent("app").Debug("key press", "key", key, "focus", m.focus, "modal", m.modal.IsVisible())

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// ctrl+c always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// While the history filter has input focus every key belongs to it
	if m.sidebar.IsFiltering() && m.focus == FocusSidebar {
		return nil, nil
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	return nil, nil
}
