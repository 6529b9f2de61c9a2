package workflow

// StatusAt returns the status of step i for the given cursor: steps before
// the cursor are completed, the cursor step is current and later steps are
// pending.
func StatusAt(i, cursor int) StepStatus {
	switch {
	case i < cursor:
		return StatusCompleted
	case i == cursor:
		return StatusCurrent
	default:
		return StatusPending
	}
}

// DeriveStatuses returns a copy of steps with Status recomputed from cursor.
// The cursor is the only source of truth; stored statuses are ignored.
func DeriveStatuses(steps []Step, cursor int) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		s.Status = StatusAt(i, cursor)
		out[i] = s
	}
	return out
}

// Mismatch records a step whose stored status disagrees with the cursor.
type Mismatch struct {
	Index   int
	StepID  string
	Stored  StepStatus
	Derived StepStatus
}

// Drift lists steps whose stored, non-empty status differs from the status
// derived from cursor.
func Drift(steps []Step, cursor int) []Mismatch {
	var out []Mismatch
	for i, s := range steps {
		if s.Status == "" {
			continue
		}
		if d := StatusAt(i, cursor); d != s.Status {
			out = append(out, Mismatch{Index: i, StepID: s.ID, Stored: s.Status, Derived: d})
		}
	}
	return out
}

// CursorFromStatuses recovers a cursor from stored statuses: the first
// current step, else the first pending step, else the last step. ok is false
// when no step carries a status.
func CursorFromStatuses(steps []Step) (cursor int, ok bool) {
	firstPending := -1
	seen := false
	for i, s := range steps {
		switch s.Status {
		case StatusCurrent:
			return i, true
		case StatusPending:
			if firstPending < 0 {
				firstPending = i
			}
			seen = true
		case StatusCompleted:
			seen = true
		}
	}
	if !seen {
		return 0, false
	}
	if firstPending >= 0 {
		return firstPending, true
	}
	return len(steps) - 1, true
}
