package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/catalog"
	"github.com/zhubert/panta/internal/config"
	"github.com/zhubert/panta/internal/logger"
	"github.com/zhubert/panta/internal/nav"
	"github.com/zhubert/panta/internal/ui"
	"github.com/zhubert/panta/internal/workflow"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusPage
)

func (f Focus) String() string {
	if f == FocusPage {
		return "page"
	}
	return "sidebar"
}

// Options configures a Model beyond what the user config holds.
type Options struct {
	// StartRoute overrides the configured start route.
	StartRoute string
	// Workflows is the merged set of workflow definitions. Nil means the
	// built-in defaults.
	Workflows *workflow.Config
	// Now pins the clock used for relative times. Zero means time.Now().
	Now time.Time
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	page    *ui.Page
	modal   *ui.Modal

	router    *nav.Router
	shell     *nav.Shell
	catalog   *catalog.Catalog
	workflows *workflow.Config

	// runs holds one run per workflow definition ID. Runs outlive route
	// changes so leaving and returning keeps progress.
	runs map[string]*workflow.Run

	width  int
	height int
	focus  Focus
}

// New creates a new app model. It never fails: an invalid start route
// falls back to the default start route.
func New(cfg *config.Config, version string, opts Options) *Model {
	log := logger.WithComponent("app")

	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	workflows := opts.Workflows
	if workflows == nil {
		workflows = workflow.DefaultConfig()
	}

	start := opts.StartRoute
	if start == "" {
		start = cfg.GetStartRoute()
	}
	router, err := nav.NewRouter(start)
	if err != nil {
		log.Warn("invalid start route, using default", "route", start, "error", err)
		router, _ = nav.NewRouter(config.DefaultStartRoute)
	}

	routes := cfg.GetRoutes()
	resolver := nav.NewResolver(nav.DefaultRouteTable().WithOverrides(routes.Chat, routes.Workflow))
	shell := nav.NewShell(resolver, router.Current())
	cat := catalog.New(now)

	m := &Model{
		config:    cfg,
		version:   version,
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		sidebar:   ui.NewSidebar(shell, cat),
		page:      ui.NewPage(),
		modal:     ui.NewModal(),
		router:    router,
		shell:     shell,
		catalog:   cat,
		workflows: workflows,
		runs:      make(map[string]*workflow.Run),
		focus:     FocusSidebar,
	}

	m.sidebar.SetNow(now)
	m.sidebar.SetUser(cfg.GetUser())
	m.sidebar.SetFocused(true)
	m.syncRoute()

	log.Info("app started", "version", version, "route", router.Current(), "mode", shell.Mode())
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close flushes anything the app owns. Safe to call more than once.
func (m *Model) Close() {
	logger.WithComponent("app").Info("app closing", "route", m.router.Current())
}

// Route returns the current route.
func (m *Model) Route() string {
	return m.router.Current()
}

// Mode returns the sidebar mode currently shown.
func (m *Model) Mode() nav.Mode {
	return m.shell.Mode()
}

// Collapsed reports whether the sidebar is collapsed to the rail.
func (m *Model) Collapsed() bool {
	return m.shell.Collapsed()
}

// Focus returns the focused panel.
func (m *Model) Focus() Focus {
	return m.focus
}

// Sidebar returns the sidebar component. Used by the demo executor.
func (m *Model) Sidebar() *ui.Sidebar {
	return m.sidebar
}

// Size returns the last window size received.
func (m *Model) Size() (width, height int) {
	return m.width, m.height
}

// toggleFocus switches between sidebar and page
func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.focus = FocusPage
	} else {
		m.focus = FocusSidebar
	}
	m.sidebar.SetFocused(m.focus == FocusSidebar)
	m.page.SetFocused(m.focus == FocusPage)
	logger.WithComponent("app").Debug("focus changed", "focus", m.focus)
}
