package modals

import (
	"net/mail"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - theme, notifications and profile
// =============================================================================

// SettingsState edits the values stored in the user config. Fields are
// bound to the form by pointer, so getters always see the live values.
type SettingsState struct {
	selectedTheme string
	OriginalTheme string

	notifications bool
	userName      string
	userEmail     string

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  ←/→: toggle  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetNotificationsEnabled returns whether notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.notifications
}

// GetUser returns the trimmed profile name and email.
func (s *SettingsState) GetUser() (name, email string) {
	return strings.TrimSpace(s.userName), strings.TrimSpace(s.userEmail)
}

// Validate checks the profile fields. The app calls it before saving since
// Enter never reaches the form.
func (s *SettingsState) Validate() error {
	return validateEmail(s.userEmail)
}

func validateEmail(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	_, err := mail.ParseAddress(v)
	return err
}

// NewSettingsState creates a SettingsState with the current settings values.
func NewSettingsState(themes, themeDisplayNames []string, currentTheme string,
	notificationsEnabled bool, userName, userEmail string) *SettingsState {

	s := &SettingsState{
		selectedTheme: currentTheme,
		OriginalTheme: currentTheme,
		notifications: notificationsEnabled,
		userName:      userName,
		userEmail:     userEmail,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	appearance := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewConfirm().
			Title("Desktop notifications").
			Description("Notify when a workflow run completes").
			Affirmative("On").
			Negative("Off").
			Value(&s.notifications),
	)

	profile := huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Placeholder("Ada Lovelace").
			CharLimit(UserFieldCharLimit).
			Value(&s.userName),
		huh.NewInput().
			Title("Email").
			Placeholder("ada@example.com").
			CharLimit(UserFieldCharLimit).
			Validate(validateEmail).
			Value(&s.userEmail),
	).Title("Profile")

	s.form = huh.NewForm(appearance, profile).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
