package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// GoToState - jump to any known route
// =============================================================================

// GoToState offers every known route in a filterable select.
type GoToState struct {
	options  []RouteOption
	selected string
	current  string

	form *huh.Form
}

func (*GoToState) modalState() {}

func (s *GoToState) Title() string { return "Go to" }

func (s *GoToState) Help() string {
	return "/: filter  ↑/↓: choose  Enter: go  Esc: cancel"
}

func (s *GoToState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *GoToState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SelectedRoute returns the route highlighted in the select.
func (s *GoToState) SelectedRoute() string {
	return s.selected
}

// Changed reports whether the selection differs from the route the modal
// was opened on.
func (s *GoToState) Changed() bool {
	return s.selected != s.current
}

// NewGoToState builds the modal with current preselected.
func NewGoToState(options []RouteOption, current string) *GoToState {
	s := &GoToState{options: options, selected: current, current: current}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := fmt.Sprintf("%-16s %s", opt.Title, opt.Route)
		if opt.Mode != "" {
			label += "  [" + opt.Mode + "]"
		}
		huhOptions[i] = huh.NewOption(label, opt.Route).Selected(opt.Route == current)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Route").
				Options(huhOptions...).
				Height(min(len(options)+2, HelpModalMaxVisible)).
				Filtering(false).
				Value(&s.selected),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(s.form)
	return s
}
