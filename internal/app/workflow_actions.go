package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/clipboard"
	"github.com/zhubert/panta/internal/logger"
	"github.com/zhubert/panta/internal/notification"
)

// NotificationSentMsg reports the result of a desktop notification.
type NotificationSentMsg struct {
	Err error
}

// ClipboardWrittenMsg reports the result of a clipboard write.
type ClipboardWrittenMsg struct {
	Text string
	Err  error
}

// advanceWorkflow completes the active step. Finishing the last step shows
// a success flash and, if enabled, a desktop notification.
func (m *Model) advanceWorkflow() tea.Cmd {
	run := m.activeRun()
	if run == nil {
		return nil
	}
	if !run.Advance() {
		return m.ShowFlashInfo(run.Definition.Name + " is already complete")
	}
	m.syncWorkflow()

	if !run.Done() {
		return nil
	}

	logger.WithComponent("app").Info("workflow completed", "workflow", run.Definition.ID, "run", run.ID)
	cmds := []tea.Cmd{m.ShowFlashSuccess(run.Definition.Name + " complete")}
	if m.config.GetNotificationsEnabled() {
		name := run.Definition.Name
		cmds = append(cmds, func() tea.Msg {
			return NotificationSentMsg{Err: notification.WorkflowCompleted(name)}
		})
	}
	return tea.Batch(cmds...)
}

// reopenWorkflowStep moves the cursor back one step.
func (m *Model) reopenWorkflowStep() tea.Cmd {
	run := m.activeRun()
	if run == nil {
		return nil
	}
	if !run.Back() {
		return m.ShowFlashInfo("Already at the first step")
	}
	m.syncWorkflow()
	return nil
}

// resetWorkflow restarts the active run from its first step.
func (m *Model) resetWorkflow() tea.Cmd {
	run := m.activeRun()
	if run == nil {
		return nil
	}
	run.Reset()
	m.syncWorkflow()
	return m.ShowFlashInfo("Restarted " + run.Definition.Name)
}

// copyToClipboard writes text off the update loop.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardWrittenMsg{Text: text, Err: clipboard.WriteText(text)}
	}
}
