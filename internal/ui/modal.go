package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/ui/modals"
)

// ModalState is re-exported so the app only imports the ui package for the
// container.
type ModalState = modals.ModalState

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string

	screenWidth  int
	screenHeight int
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
	m.resizeState()
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// SetScreenSize records the terminal size so sized modals can fit into it.
func (m *Modal) SetScreenSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
	m.resizeState()
}

func (m *Modal) resizeState() {
	sized, ok := m.State.(modals.ModalWithSize)
	if !ok || m.screenWidth == 0 {
		return
	}
	// border plus padding on each side
	const chrome = 6
	width := min(m.width(), m.screenWidth) - chrome
	height := m.screenHeight - chrome
	sized.SetSize(max(width, 1), max(height, 1))
}

// width returns the modal box width for the current state.
func (m *Modal) width() int {
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		return pw.PreferredWidth()
	}
	return ModalWidth
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// Box renders the modal box without positioning it.
func (m *Modal) Box() string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	width := m.width()
	if m.screenWidth > 0 {
		width = min(width, m.screenWidth)
	}
	return ModalStyle.Width(width).Render(content)
}

// View draws the modal centered over base, which must be a full frame of
// screenWidth x screenHeight.
func (m *Modal) View(base string, screenWidth, screenHeight int) string {
	if m.State == nil {
		return base
	}
	return Overlay(base, m.Box(), screenWidth, screenHeight)
}
