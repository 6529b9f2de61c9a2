package app

import (
	tea "charm.land/bubbletea/v2"

	pantaerrors "github.com/zhubert/panta/internal/errors"
	"github.com/zhubert/panta/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// ShowFlashForError flashes err at a level chosen by its kind. Route and
// clipboard errors leave the shell usable, so they show as warnings.
func (m *Model) ShowFlashForError(err error) tea.Cmd {
	switch pantaerrors.GetKind(err) {
	case pantaerrors.KindRoute, pantaerrors.KindClipboard:
		return m.ShowFlashWarning(err.Error())
	default:
		return m.ShowFlashError(err.Error())
	}
}
