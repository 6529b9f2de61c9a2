package workflow

import "fmt"

// Progress is the position of the cursor within a non-empty step list.
type Progress struct {
	Total  int
	Cursor int // always in [0, Total)

	// Requested is the cursor that was passed in before clamping.
	Requested int
	Clamped   bool
}

// ComputeProgress returns the progress for a list of total steps with the
// given cursor. ok is false when there are no steps, in which case nothing
// should be rendered. Cursors outside [0, total) are clamped.
func ComputeProgress(total, cursor int) (p Progress, ok bool) {
	if total <= 0 {
		return Progress{}, false
	}
	p = Progress{Total: total, Cursor: cursor, Requested: cursor}
	if cursor < 0 {
		p.Cursor = 0
		p.Clamped = true
	} else if cursor >= total {
		p.Cursor = total - 1
		p.Clamped = true
	}
	return p, true
}

// Fraction returns (Cursor+1)/Total, in (0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Cursor+1) / float64(p.Total)
}

// Percent returns the fraction as a percentage in (0, 100].
func (p Progress) Percent() float64 {
	return p.Fraction() * 100
}

// Label returns the "n / N" label shown next to the progress bar.
func (p Progress) Label() string {
	return fmt.Sprintf("%d / %d", p.Cursor+1, p.Total)
}
