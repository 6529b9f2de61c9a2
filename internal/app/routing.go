package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/logger"
	"github.com/zhubert/panta/internal/nav"
	"github.com/zhubert/panta/internal/ui"
	"github.com/zhubert/panta/internal/workflow"
)

// navigate moves the router to path and refreshes every component that
// depends on the route. Invalid paths surface as a warning flash.
func (m *Model) navigate(path string) tea.Cmd {
	changed, err := m.router.Navigate(path)
	if err != nil {
		logger.WithComponent("app").Warn("navigation rejected", "path", path, "error", err)
		return m.ShowFlashForError(err)
	}
	if changed {
		m.syncRoute()
	}
	return nil
}

// back and forward walk the router history.
func (m *Model) back() tea.Cmd {
	if !m.router.Back() {
		return m.ShowFlashInfo("No earlier page")
	}
	m.syncRoute()
	return nil
}

func (m *Model) forward() tea.Cmd {
	if !m.router.Forward() {
		return m.ShowFlashInfo("No later page")
	}
	m.syncRoute()
	return nil
}

// syncRoute pushes the router's current route into the shell, header, page
// and sidebar. The shell resets any mode override here.
func (m *Model) syncRoute() {
	route := m.router.Current()
	m.shell.SetRoute(route)

	page := m.catalog.Page(route)
	m.header.SetPage(page.Title, route)
	m.page.SetPage(page)
	m.sidebar.SelectRoute(route)
	m.syncWorkflow()
}

// activeRun returns the run for the workflow hosted on the current route,
// creating it on first visit. Nil when the route hosts no workflow.
func (m *Model) activeRun() *workflow.Run {
	def := m.workflows.ForRoute(m.router.Current())
	if def == nil {
		return nil
	}
	run, ok := m.runs[def.ID]
	if !ok {
		run = workflow.NewRun(*def)
		m.runs[def.ID] = run
		logger.WithComponent("app").Debug("workflow run started", "workflow", def.ID, "run", run.ID)
	}
	return run
}

// workflowProps builds the sidebar props from the active run. Routes that
// resolve to workflow mode without a definition get the zero props.
func (m *Model) workflowProps() ui.WorkflowProps {
	run := m.activeRun()
	if run == nil {
		return ui.WorkflowProps{}
	}
	return ui.WorkflowProps{
		Name:        run.Definition.Name,
		Description: run.Definition.Description,
		Steps:       run.Steps(),
		Current:     run.Cursor(),
		Done:        run.Done(),
	}
}

// syncWorkflow refreshes the workflow pane and the active step card below
// the page body.
func (m *Model) syncWorkflow() {
	props := m.workflowProps()
	m.sidebar.SetWorkflow(props)
	m.page.SetExtra(stepCard(m.activeRun()))
}

// stepCard renders the markdown shown under a workflow page for the active
// step.
func stepCard(run *workflow.Run) string {
	if run == nil {
		return ""
	}
	if run.Done() {
		return fmt.Sprintf("**%s complete.** Press `r` to start over.", run.Definition.Name)
	}
	step, ok := run.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### Step %d: %s\n\n", run.Cursor()+1, step.Title)
	if step.Description != "" {
		b.WriteString(step.Description + "\n\n")
	}
	switch step.Type {
	case workflow.StepForm:
		b.WriteString("Fill in the form, then press `n` to submit.")
	case workflow.StepProcessing:
		if step.Estimate != nil && step.Estimate.Duration > 0 {
			fmt.Fprintf(&b, "Processing, usually about %s. Press `n` when done.", step.Estimate.Duration)
		} else {
			b.WriteString("Processing. Press `n` when done.")
		}
	case workflow.StepApproval:
		b.WriteString("Review the result. Press `n` to approve or `p` to request changes.")
	}
	return b.String()
}

// setMode applies a user override for the current route.
func (m *Model) setMode(mode nav.Mode) tea.Cmd {
	if err := m.shell.SetOverride(mode); err != nil {
		return m.ShowFlashForError(err)
	}
	return nil
}

// routeOptions lists the destinations offered by the go-to modal: every nav
// item, the chat routes and workflow routes, without duplicates.
func (m *Model) routeOptions() []ui.RouteOption {
	resolver := m.shell.Resolver()
	seen := make(map[string]bool)
	var out []ui.RouteOption
	add := func(route string) {
		if seen[route] {
			return
		}
		seen[route] = true
		out = append(out, ui.RouteOption{
			Route: route,
			Title: m.catalog.Page(route).Title,
			Mode:  resolver.Resolve(route).String(),
		})
	}
	for _, r := range nav.KnownRoutes() {
		add(r)
	}
	for _, r := range m.workflows.Routes() {
		add(r)
	}
	for _, r := range m.catalog.Routes() {
		add(r)
	}
	return out
}
