package ui

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/panta/internal/catalog"
	"github.com/zhubert/panta/internal/logger"
)

// Page is the main pane: a scrollable viewport over the rendered markdown
// body of the current route.
type Page struct {
	viewport viewport.Model
	width    int
	height   int
	focused  bool

	page catalog.Page

	// extra is appended below the body; the workflow page uses it for the
	// active step card.
	extra string
}

// NewPage creates an empty page pane.
func NewPage() *Page {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &Page{viewport: vp}
}

// SetSize sets the pane dimensions and re-renders the body for the new width.
func (p *Page) SetSize(width, height int) {
	ctx := GetViewContext()
	p.width = width
	p.height = height
	p.viewport.SetWidth(max(ctx.InnerWidth(width)-2, 0))
	p.viewport.SetHeight(max(ctx.InnerHeight(height), 0))
	p.refresh()
}

// SetFocused sets the focus state
func (p *Page) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns the focus state
func (p *Page) IsFocused() bool {
	return p.focused
}

// SetPage shows content and scrolls to the top.
func (p *Page) SetPage(content catalog.Page) {
	p.page = content
	p.extra = ""
	p.refresh()
	p.viewport.GotoTop()
	logger.WithComponent("ui").Debug("page set", "route", content.Route, "title", content.Title)
}

// SetExtra replaces the markdown rendered after the page body.
func (p *Page) SetExtra(markdown string) {
	if markdown == p.extra {
		return
	}
	p.extra = markdown
	p.refresh()
}

// Current returns the page being shown.
func (p *Page) Current() catalog.Page {
	return p.page
}

// Refresh re-renders the body, e.g. after a theme change.
func (p *Page) Refresh() {
	p.refresh()
}

func (p *Page) refresh() {
	width := p.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}
	body := p.page.Body
	if p.extra != "" {
		body += "\n\n---\n\n" + p.extra
	}
	p.viewport.SetContent(renderMarkdown(body, width, CurrentTheme().Dark))
}

// Update forwards scroll keys and mouse wheel events to the viewport.
func (p *Page) Update(msg tea.Msg) (*Page, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyPressMsg:
		if !p.focused {
			return p, nil
		}
	case tea.MouseWheelMsg:
	default:
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the page pane
func (p *Page) View() string {
	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}
	content := lipgloss.NewStyle().Padding(0, 1).Render(p.viewport.View())
	return style.Width(p.width).Height(p.height).Render(content)
}
