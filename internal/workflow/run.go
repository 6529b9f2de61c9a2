package workflow

import (
	"github.com/google/uuid"

	"github.com/zhubert/panta/internal/logger"
)

// Run moves a cursor through one definition's steps. It is the driver of
// workflow progression; renderers only read from it.
type Run struct {
	ID         string
	Definition Definition

	cursor int
	done   bool
}

// NewRun starts a run at the first step. If the definition's steps carry
// stored statuses, the cursor resumes from them.
func NewRun(def Definition) *Run {
	r := &Run{ID: uuid.New().String(), Definition: def}
	if c, ok := CursorFromStatuses(def.Steps); ok {
		r.cursor = c
	}
	return r
}

// Cursor returns the index of the active step.
func (r *Run) Cursor() int {
	return r.cursor
}

// Done reports whether the last step has been completed.
func (r *Run) Done() bool {
	return r.done
}

// Steps returns the steps with statuses derived from the cursor.
func (r *Run) Steps() []Step {
	if r.done {
		return DeriveStatuses(r.Definition.Steps, len(r.Definition.Steps))
	}
	return DeriveStatuses(r.Definition.Steps, r.cursor)
}

// Current returns the active step, or false when the run has no steps or is done.
func (r *Run) Current() (Step, bool) {
	if r.done || r.cursor >= len(r.Definition.Steps) {
		return Step{}, false
	}
	return r.Definition.Steps[r.cursor], true
}

// Advance completes the active step. Completing the last step finishes the
// run. Returns false if there was nothing to advance.
func (r *Run) Advance() bool {
	n := len(r.Definition.Steps)
	if r.done || n == 0 {
		return false
	}
	if r.cursor < n-1 {
		r.cursor++
	} else {
		r.done = true
	}
	logger.WithComponent("workflow").Debug("run advanced",
		"run", r.ID, "workflow", r.Definition.ID, "cursor", r.cursor, "done", r.done)
	return true
}

// Back reopens the previous step, or the last step if the run is done.
func (r *Run) Back() bool {
	if r.done {
		r.done = false
		return true
	}
	if r.cursor == 0 {
		return false
	}
	r.cursor--
	return true
}

// Reset returns the run to its first step.
func (r *Run) Reset() {
	r.cursor = 0
	r.done = false
}
