package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/workflow"
)

// NavigateMsg asks the app's router to move to Path. It is the only way
// the sidebar causes a page transition.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command that emits NavigateMsg for path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// WorkflowProps is what a workflow-hosting page passes to the sidebar.
// Every field is optional; the zero value renders the generic "Workflow"
// title and no steps.
type WorkflowProps struct {
	Name        string
	Description string
	Steps       []workflow.Step
	Current     int

	// Done marks every step completed regardless of Current.
	Done bool
}

// DefaultWorkflowName is shown when WorkflowProps.Name is empty.
const DefaultWorkflowName = "Workflow"

// DisplayName returns Name or the default title.
func (p WorkflowProps) DisplayName() string {
	if p.Name == "" {
		return DefaultWorkflowName
	}
	return p.Name
}
