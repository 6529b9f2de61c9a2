package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
	"github.com/sahilm/fuzzy"

	"github.com/zhubert/panta/internal/catalog"
	"github.com/zhubert/panta/internal/keys"
	"github.com/zhubert/panta/internal/logger"
	"github.com/zhubert/panta/internal/nav"
	"github.com/zhubert/panta/internal/workflow"
)

// Step row markers, one per derived status
const (
	markerCompleted = "✓"
	markerCurrent   = "●"
	markerPending   = "○"
)

type chatSection int

const (
	sectionAssistants chatSection = iota
	sectionHistory
)

func (c chatSection) title() string {
	if c == sectionHistory {
		return "History"
	}
	return "Assistants"
}

type entryKind int

const (
	entryLink entryKind = iota
	entrySection
)

// sidebarEntry is one selectable row. Non-selectable lines (titles, steps,
// the progress bar) are not entries.
type sidebarEntry struct {
	kind    entryKind
	id      string
	label   string
	detail  string
	icon    nav.IconKind
	route   string
	section chatSection
}

// Sidebar renders the navigation shell around the main pane: the mode
// header, one body pane chosen by the shell's mode, and the pinned footer.
// It reads mode and collapse state from the shell and never changes the
// route itself; activating a link returns a Navigate command.
type Sidebar struct {
	shell   *nav.Shell
	catalog *catalog.Catalog

	width       int
	height      int
	focused     bool
	selectedIdx int
	lastMode    nav.Mode

	userName  string
	userEmail string
	now       time.Time

	sectionOpen map[chatSection]bool
	filtering   bool
	filterInput textinput.Model

	workflow WorkflowProps
}

// NewSidebar creates a sidebar bound to shell and content source cat.
func NewSidebar(shell *nav.Shell, cat *catalog.Catalog) *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "filter history..."
	ti.CharLimit = 64

	return &Sidebar{
		shell:       shell,
		catalog:     cat,
		now:         time.Now(),
		lastMode:    shell.Mode(),
		filterInput: ti,
		sectionOpen: map[chatSection]bool{
			sectionAssistants: true,
			sectionHistory:    true,
		},
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	logger.WithComponent("ui").Debug("Sidebar size set",
		"width", width,
		"height", height,
		"collapsed", s.shell.Collapsed(),
	)
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
	if !focused && s.filtering {
		s.stopFilter(false)
	}
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetUser sets the name and email shown on the profile button.
func (s *Sidebar) SetUser(name, email string) {
	s.userName = name
	s.userEmail = email
}

// SetNow pins the clock used for history ages.
func (s *Sidebar) SetNow(now time.Time) {
	s.now = now
}

// SetWorkflow replaces the props rendered by the workflow pane.
func (s *Sidebar) SetWorkflow(props WorkflowProps) {
	s.workflow = props
}

// Workflow returns the current workflow props.
func (s *Sidebar) Workflow() WorkflowProps {
	return s.workflow
}

// IsFiltering reports whether the history filter input has focus.
func (s *Sidebar) IsFiltering() bool {
	return s.filtering
}

// FilterQuery returns the active history filter text.
func (s *Sidebar) FilterQuery() string {
	return s.filterInput.Value()
}

// SectionOpen reports whether a chat section is expanded. Sections are
// "assistants" and "history".
func (s *Sidebar) SectionOpen(name string) bool {
	switch name {
	case "assistants":
		return s.sectionOpen[sectionAssistants]
	case "history":
		return s.sectionOpen[sectionHistory]
	}
	return false
}

// ToggleSection folds or unfolds a chat section by name.
func (s *Sidebar) ToggleSection(name string) {
	switch name {
	case "assistants":
		s.sectionOpen[sectionAssistants] = !s.sectionOpen[sectionAssistants]
	case "history":
		s.sectionOpen[sectionHistory] = !s.sectionOpen[sectionHistory]
	}
	s.clampSelection()
}

// SelectedRoute returns the route of the highlighted link, or "".
func (s *Sidebar) SelectedRoute() string {
	entries := s.entries()
	if s.selectedIdx < 0 || s.selectedIdx >= len(entries) {
		return ""
	}
	e := entries[s.selectedIdx]
	if e.kind != entryLink {
		return ""
	}
	return e.route
}

// SelectRoute moves the highlight to the first link for route. Returns
// false if no visible link points there.
func (s *Sidebar) SelectRoute(route string) bool {
	s.syncMode()
	for i, e := range s.entries() {
		if e.kind == entryLink && e.route == route {
			s.selectedIdx = i
			return true
		}
	}
	return false
}

// visibleHistory returns history entries matching the filter, best first.
func (s *Sidebar) visibleHistory() []catalog.Conversation {
	history := s.catalog.History()
	query := strings.TrimSpace(s.filterInput.Value())
	if query == "" {
		return history
	}
	matches := fuzzy.Find(query, s.catalog.HistoryTitles())
	out := make([]catalog.Conversation, 0, len(matches))
	for _, m := range matches {
		out = append(out, history[m.Index])
	}
	return out
}

// entries lists the selectable rows for the current mode, in render order.
func (s *Sidebar) entries() []sidebarEntry {
	var out []sidebarEntry
	link := func(it nav.NavItem) sidebarEntry {
		return sidebarEntry{kind: entryLink, id: it.ID, label: it.Label, icon: it.Icon, route: it.Route}
	}

	if s.shell.Collapsed() {
		for _, it := range nav.PrimaryItems() {
			out = append(out, link(it))
		}
		for _, it := range nav.BottomItems() {
			out = append(out, link(it))
		}
		return append(out, link(nav.ProfileItem()))
	}

	switch s.shell.Mode() {
	case nav.ModeNav:
		for _, it := range nav.PrimaryItems() {
			out = append(out, link(it))
		}
	case nav.ModeChat:
		out = append(out, sidebarEntry{kind: entrySection, id: "assistants", label: "Assistants", section: sectionAssistants})
		if s.sectionOpen[sectionAssistants] {
			for _, a := range s.catalog.Assistants() {
				out = append(out, sidebarEntry{
					kind: entryLink, id: a.ID, label: a.Name, detail: a.Description,
					icon: nav.IconAssistant, route: a.Route,
				})
			}
		}
		out = append(out, sidebarEntry{kind: entrySection, id: "history", label: "History", section: sectionHistory})
		if s.sectionOpen[sectionHistory] {
			for _, c := range s.visibleHistory() {
				out = append(out, sidebarEntry{
					kind: entryLink, id: c.ID, label: c.Title, detail: c.Age(s.now),
					icon: nav.IconHistory, route: c.Route,
				})
			}
		}
	case nav.ModeWorkflow:
		// Steps are driven by the page, so the pane has no selectable rows.
	}

	for _, it := range nav.BottomItems() {
		out = append(out, link(it))
	}
	return append(out, link(nav.ProfileItem()))
}

func (s *Sidebar) clampSelection() {
	n := len(s.entries())
	if s.selectedIdx >= n {
		s.selectedIdx = n - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// syncMode resets the highlight when the shell switched panes since the
// last update.
func (s *Sidebar) syncMode() {
	if m := s.shell.Mode(); m != s.lastMode {
		s.lastMode = m
		s.selectedIdx = 0
		if s.filtering {
			s.stopFilter(true)
		}
	}
	s.clampSelection()
}

func (s *Sidebar) startFilter() tea.Cmd {
	s.filtering = true
	s.sectionOpen[sectionHistory] = true
	s.filterInput.SetValue("")
	return s.filterInput.Focus()
}

func (s *Sidebar) stopFilter(clear bool) {
	s.filtering = false
	s.filterInput.Blur()
	if clear {
		s.filterInput.SetValue("")
	}
	s.clampSelection()
}

// Update handles messages
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	s.syncMode()
	if !s.focused {
		return s, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.filtering {
		switch keyMsg.String() {
		case keys.Escape:
			s.stopFilter(true)
			return s, nil
		case keys.Enter:
			s.stopFilter(false)
			return s, nil
		case keys.Up, keys.Down:
			// fall through to list movement
		default:
			var cmd tea.Cmd
			s.filterInput, cmd = s.filterInput.Update(msg)
			s.selectedIdx = 0
			s.clampSelection()
			return s, cmd
		}
	}

	entries := s.entries()
	switch keyMsg.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
		}
	case keys.Down, "j":
		if s.selectedIdx < len(entries)-1 {
			s.selectedIdx++
		}
	case keys.Space:
		if s.selectedIdx < len(entries) && entries[s.selectedIdx].kind == entrySection {
			s.ToggleSection(entries[s.selectedIdx].id)
		}
	case "/":
		if s.shell.Mode() == nav.ModeChat && !s.shell.Collapsed() {
			return s, s.startFilter()
		}
	case keys.Enter:
		if s.selectedIdx >= len(entries) {
			return s, nil
		}
		e := entries[s.selectedIdx]
		if e.kind == entrySection {
			s.ToggleSection(e.id)
			return s, nil
		}
		if e.route != "" {
			logger.WithComponent("ui").Debug("sidebar navigate", "item", e.id, "route", e.route)
			return s, Navigate(e.route)
		}
	}
	return s, nil
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()
	s.syncMode()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}
	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)
	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	var content string
	if s.shell.Collapsed() {
		content = s.renderRail(innerWidth, innerHeight)
	} else {
		content = s.renderPanel(innerWidth, innerHeight)
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(content)
}

// renderRail draws the icon-only collapsed sidebar.
func (s *Sidebar) renderRail(innerWidth, innerHeight int) string {
	center := lipgloss.NewStyle().Width(innerWidth).Align(lipgloss.Center)
	active := ModeIconActiveStyle.Padding(0)

	var top []string
	top = append(top, center.Render(active.Render(nav.ModeIcon(s.shell.Mode()).Glyph())))
	top = append(top, center.Render(SidebarMutedStyle.Padding(0).Render(strings.Repeat("─", innerWidth))))

	entries := s.entries()
	var bottom []string
	for i, e := range entries {
		glyph := e.icon.Glyph()
		if e.id == nav.ProfileItem().ID {
			glyph = s.initial()
		}
		var line string
		switch {
		case s.focused && i == s.selectedIdx:
			line = center.Render(SidebarSelectedStyle.Padding(0).Render(glyph))
		case s.isActiveRoute(e.route):
			line = center.Render(lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render(glyph))
		default:
			line = center.Render(glyph)
		}
		if i < len(nav.PrimaryItems()) {
			top = append(top, line)
		} else {
			bottom = append(bottom, line)
		}
	}
	bottom = append(bottom, center.Render(SidebarMutedStyle.Padding(0).Render(nav.IconExpand.Glyph())))

	return stackPinned(top, bottom, innerHeight)
}

// initial returns the first grapheme of the user name, upper-cased.
func (s *Sidebar) initial() string {
	name := strings.TrimSpace(s.userName)
	if name == "" {
		return nav.IconUser.Glyph()
	}
	g := uniseg.NewGraphemes(name)
	if !g.Next() {
		return nav.IconUser.Glyph()
	}
	return strings.ToUpper(g.Str())
}

// renderPanel draws the expanded sidebar: header, pane and pinned footer.
func (s *Sidebar) renderPanel(innerWidth, innerHeight int) string {
	header := s.renderHeader(innerWidth)
	footerEntries, footer := s.renderFooter(innerWidth)

	entries := s.entries()
	paneEntries := entries[:len(entries)-footerEntries]

	var body []string
	sel := -1
	switch s.shell.Mode() {
	case nav.ModeChat:
		body, sel = s.renderChatPane(paneEntries, innerWidth)
	case nav.ModeWorkflow:
		body = s.renderWorkflowPane(innerWidth)
	default:
		body, sel = s.renderNavPane(paneEntries, innerWidth)
	}

	top := append([]string{header, SidebarMutedStyle.Render(strings.Repeat("─", max(innerWidth-2, 0)))}, body...)
	if sel >= 0 {
		sel += len(top) - len(body)
	}
	top = scrollToSelection(top, len(footer), innerHeight, sel)
	return stackPinned(top, footer, innerHeight)
}

// renderHeader draws the mode switch icons and the collapse button.
func (s *Sidebar) renderHeader(innerWidth int) string {
	current := s.shell.Mode()
	var icons []string
	for _, m := range s.shell.Available() {
		glyph := nav.ModeIcon(m).Glyph()
		if m == current {
			icons = append(icons, ModeIconActiveStyle.Render(glyph))
		} else {
			icons = append(icons, ModeIconStyle.Render(glyph))
		}
	}
	left := strings.Join(icons, "")
	right := ModeIconStyle.Render(nav.IconCollapse.Glyph())
	label := SidebarMutedStyle.Render(current.String())

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(label) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+right, innerWidth, "")
	}
	return left + label + strings.Repeat(" ", gap) + right
}

// renderLink draws a link row, highlighting selection and the active route.
func (s *Sidebar) renderLink(e sidebarEntry, selected bool, innerWidth int) []string {
	label := e.icon.Glyph() + " " + e.label
	avail := innerWidth - 4
	if avail < 1 {
		avail = 1
	}
	label = ansi.Truncate(label, avail, "…")

	var lines []string
	switch {
	case selected:
		lines = append(lines, SidebarSelectedStyle.Width(innerWidth).Render("> "+label))
	case s.isActiveRoute(e.route):
		lines = append(lines, SidebarItemStyle.Foreground(ColorPrimary).Bold(true).Render("▌ "+label))
	default:
		lines = append(lines, SidebarItemStyle.Render("  "+label))
	}
	if e.detail != "" {
		detail := ansi.Truncate(e.detail, max(innerWidth-6, 1), "…")
		lines = append(lines, SidebarMutedStyle.Render("    "+detail))
	}
	return lines
}

func (s *Sidebar) isActiveRoute(route string) bool {
	return route != "" && route == s.shell.Route()
}

// Pane renderers return the index of the selected row within their lines,
// or -1, so the panel can scroll it into view.

func (s *Sidebar) renderNavPane(entries []sidebarEntry, innerWidth int) ([]string, int) {
	var lines []string
	sel := -1
	lines = append(lines, SidebarSectionStyle.Render("Navigate"))
	for i, e := range entries {
		selected := s.focused && i == s.selectedIdx
		if selected {
			sel = len(lines)
		}
		lines = append(lines, s.renderLink(e, selected, innerWidth)...)
	}
	return lines, sel
}

func (s *Sidebar) renderChatPane(entries []sidebarEntry, innerWidth int) ([]string, int) {
	var lines []string
	sel := -1
	for i, e := range entries {
		selected := s.focused && i == s.selectedIdx
		if selected {
			sel = len(lines)
		}
		if e.kind == entrySection {
			arrow := "▾"
			if !s.sectionOpen[e.section] {
				arrow = "▸"
			}
			title := arrow + " " + e.section.title()
			if e.section == sectionHistory && s.filterInput.Value() != "" && !s.filtering {
				title += SidebarMutedStyle.Render("/" + s.filterInput.Value())
			}
			if selected {
				lines = append(lines, SidebarSelectedStyle.Width(innerWidth).Render("> "+title))
			} else {
				lines = append(lines, SidebarSectionStyle.Render(title))
			}
			if e.section == sectionHistory && s.filtering {
				s.filterInput.SetWidth(max(innerWidth-5, 1))
				lines = append(lines, SidebarItemStyle.Render(FooterKeyStyle.Render("/")+" "+s.filterInput.View()))
			}
			continue
		}
		lines = append(lines, s.renderLink(e, selected, innerWidth)...)
	}
	if s.sectionOpen[sectionHistory] && len(s.visibleHistory()) == 0 {
		lines = append(lines, SidebarMutedStyle.Italic(true).Render("  no matches"))
	}
	return lines, sel
}

// renderWorkflowPane draws the workflow title, progress and step list. The
// step statuses are always derived from the cursor; stored statuses that
// disagree are only logged.
func (s *Sidebar) renderWorkflowPane(innerWidth int) []string {
	log := logger.WithComponent("ui")
	props := s.workflow

	var lines []string
	lines = append(lines, PanelTitleStyle.Render(ansi.Truncate(props.DisplayName(), max(innerWidth-2, 1), "…")))
	if props.Description != "" {
		desc := SidebarMutedStyle.Width(innerWidth).Render(props.Description)
		lines = append(lines, strings.Split(desc, "\n")...)
	}

	p, ok := workflow.ComputeProgress(len(props.Steps), props.Current)
	if !ok {
		return lines
	}
	if p.Clamped {
		log.Warn("workflow cursor out of range, clamped",
			"workflow", props.DisplayName(), "cursor", p.Requested, "steps", p.Total)
	}

	cursor := p.Cursor
	if props.Done {
		cursor = p.Total
	}
	if drift := workflow.Drift(props.Steps, cursor); len(drift) > 0 {
		for _, d := range drift {
			log.Debug("step status disagrees with cursor",
				"step", d.StepID, "stored", d.Stored, "derived", d.Derived)
		}
	}

	lines = append(lines, "")
	lines = append(lines, s.renderProgress(p, props.Done, innerWidth))
	lines = append(lines, "")

	for _, step := range workflow.DeriveStatuses(props.Steps, cursor) {
		lines = append(lines, renderStepRow(step, innerWidth)...)
	}
	return lines
}

// renderProgress draws the bar followed by the "n / N" label.
func (s *Sidebar) renderProgress(p workflow.Progress, done bool, innerWidth int) string {
	label := p.Label()
	pct := p.Fraction()
	if done {
		label = fmt.Sprintf("%d / %d", p.Total, p.Total)
		pct = 1
	}
	labelText := ProgressLabelStyle.Render(label)
	barWidth := innerWidth - lipgloss.Width(labelText) - 3
	if barWidth < ProgressBarMinWidth {
		return SidebarItemStyle.Render(labelText)
	}
	bar := progress.New(progress.WithWidth(barWidth), progress.WithoutPercentage())
	return SidebarItemStyle.Render(bar.ViewAs(pct) + " " + labelText)
}

// renderStepRow draws one step with its status marker. The current step
// also shows its description and estimate.
func renderStepRow(step workflow.Step, innerWidth int) []string {
	var marker, title string
	avail := max(innerWidth-5, 1)
	name := ansi.Truncate(step.Title, avail, "…")
	switch step.Status {
	case workflow.StatusCompleted:
		marker = StepCompletedMarkerStyle.Render(markerCompleted)
		title = StepCompletedTitleStyle.Render(name)
	case workflow.StatusCurrent:
		marker = StepCurrentMarkerStyle.Render(markerCurrent)
		title = StepCurrentTitleStyle.Render(name)
	default:
		marker = StepPendingMarkerStyle.Render(markerPending)
		title = StepPendingTitleStyle.Render(name)
	}

	lines := []string{SidebarItemStyle.Render(marker + " " + title)}
	if step.Status != workflow.StatusCurrent {
		return lines
	}
	detail := step.Description
	if step.Estimate != nil && step.Estimate.Duration > 0 {
		if detail != "" {
			detail += " "
		}
		detail += "(~" + step.Estimate.Duration.String() + ")"
	}
	if detail != "" {
		wrapped := SidebarMutedStyle.PaddingLeft(3).Width(innerWidth).Render(detail)
		lines = append(lines, strings.Split(wrapped, "\n")...)
	}
	return lines
}

// renderFooter draws the bottom nav and profile button. It returns how many
// entries it consumed from the end of entries() and the rendered lines.
func (s *Sidebar) renderFooter(innerWidth int) (int, []string) {
	entries := s.entries()
	bottom := append(nav.BottomItems(), nav.ProfileItem())
	start := len(entries) - len(bottom)

	lines := []string{SidebarMutedStyle.Render(strings.Repeat("─", max(innerWidth-2, 0)))}
	for i := start; i < len(entries); i++ {
		e := entries[i]
		if e.id == nav.ProfileItem().ID {
			e.label = s.profileLabel()
			e.detail = s.userEmail
		}
		lines = append(lines, s.renderLink(e, s.focused && i == s.selectedIdx, innerWidth)...)
	}
	return len(bottom), lines
}

func (s *Sidebar) profileLabel() string {
	if s.userName != "" {
		return s.userName
	}
	return nav.ProfileItem().Label
}

// scrollToSelection trims top so that, together with reserved footer lines,
// it fits height while keeping line sel visible.
func scrollToSelection(top []string, reserved, height, sel int) []string {
	avail := height - reserved
	if avail < 1 || len(top) <= avail {
		return top
	}
	offset := 0
	if sel >= avail {
		offset = sel - avail + 1
	}
	return top[offset : offset+avail]
}

// stackPinned places top at the top and bottom at the bottom of a block of
// the given height, padding between them.
func stackPinned(top, bottom []string, height int) string {
	if len(top)+len(bottom) > height {
		keep := height - len(bottom)
		if keep < 0 {
			keep = 0
			bottom = bottom[len(bottom)-height:]
		}
		top = top[:keep]
	}
	gap := height - len(top) - len(bottom)
	lines := make([]string, 0, height)
	lines = append(lines, top...)
	for i := 0; i < gap; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, bottom...)
	return strings.Join(lines, "\n")
}
