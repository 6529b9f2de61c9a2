package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/panta/internal/nav"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	flashMessage *FlashMessage

	mode       nav.Mode
	collapsed  bool
	filtering  bool // chat history filter has input focus
	canHistory bool // router has back history
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "m", Desc: "mode"},
			{Key: "ctrl+b", Desc: "collapse"},
			{Key: "g", Desc: "go to"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(mode nav.Mode, collapsed, filtering, canHistory bool) {
	f.mode = mode
	f.collapsed = collapsed
	f.filtering = filtering
	f.canHistory = canHistory
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// Flash returns the flash message being shown, or nil.
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash. Returns true if one was removed.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) flashColor() lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch f.flashMessage.Type {
	case FlashError:
		return style.Foreground(ColorError)
	case FlashWarning:
		return style.Foreground(ColorWarning)
	case FlashSuccess:
		return style.Foreground(ColorSuccess)
	default:
		return style.Foreground(ColorInfo)
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		text := f.flashMessage.Type.Icon() + " " + f.flashMessage.Text
		return FooterStyle.Width(f.width).Render(f.flashColor().Render(text))
	}

	var bindings []KeyBinding
	switch {
	case f.filtering:
		bindings = []KeyBinding{
			{Key: "type", Desc: "filter history"},
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "clear"},
		}
	default:
		bindings = append(bindings, f.bindings...)
		switch f.mode {
		case nav.ModeChat:
			bindings = insertBindings(bindings, 3, KeyBinding{Key: "/", Desc: "filter"}, KeyBinding{Key: "space", Desc: "fold"})
		case nav.ModeWorkflow:
			bindings = insertBindings(bindings, 3, KeyBinding{Key: "n/p", Desc: "next/prev step"})
		}
		if f.collapsed {
			for i := range bindings {
				if bindings[i].Key == "ctrl+b" {
					bindings[i].Desc = "expand"
				}
			}
		}
		if f.canHistory {
			bindings = append(bindings, KeyBinding{Key: "alt+←", Desc: "back"})
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}

func insertBindings(bs []KeyBinding, at int, extra ...KeyBinding) []KeyBinding {
	if at > len(bs) {
		at = len(bs)
	}
	out := make([]KeyBinding, 0, len(bs)+len(extra))
	out = append(out, bs[:at]...)
	out = append(out, extra...)
	return append(out, bs[at:]...)
}
