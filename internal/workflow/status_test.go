package workflow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func threeSteps() []Step {
	return []Step{
		{ID: "a", Title: "A", Type: StepForm},
		{ID: "b", Title: "B", Type: StepProcessing},
		{ID: "c", Title: "C", Type: StepApproval},
	}
}

func statuses(steps []Step) []StepStatus {
	out := make([]StepStatus, len(steps))
	for i, s := range steps {
		out[i] = s.Status
	}
	return out
}

func TestDeriveStatuses(t *testing.T) {
	tests := []struct {
		cursor int
		want   []StepStatus
	}{
		{0, []StepStatus{StatusCurrent, StatusPending, StatusPending}},
		{1, []StepStatus{StatusCompleted, StatusCurrent, StatusPending}},
		{2, []StepStatus{StatusCompleted, StatusCompleted, StatusCurrent}},
		{3, []StepStatus{StatusCompleted, StatusCompleted, StatusCompleted}},
	}

	for _, tt := range tests {
		got := statuses(DeriveStatuses(threeSteps(), tt.cursor))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("cursor %d mismatch (-want +got):\n%s", tt.cursor, diff)
		}
	}
}

func TestDeriveStatuses_DoesNotMutateInput(t *testing.T) {
	steps := threeSteps()
	steps[0].Status = StatusPending

	_ = DeriveStatuses(steps, 2)
	if steps[0].Status != StatusPending {
		t.Error("DeriveStatuses mutated its input")
	}
}

func TestDrift(t *testing.T) {
	steps := threeSteps()
	steps[0].Status = StatusCompleted
	steps[1].Status = StatusCompleted // cursor still points here
	steps[2].Status = StatusPending

	got := Drift(steps, 1)
	want := []Mismatch{{Index: 1, StepID: "b", Stored: StatusCompleted, Derived: StatusCurrent}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Drift() mismatch (-want +got):\n%s", diff)
	}
}

func TestDrift_IgnoresUnsetStatus(t *testing.T) {
	if got := Drift(threeSteps(), 1); len(got) != 0 {
		t.Errorf("Drift() = %v, want none for unset statuses", got)
	}
}

func TestCursorFromStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status []StepStatus
		cursor int
		ok     bool
	}{
		{"unset", []StepStatus{"", "", ""}, 0, false},
		{"current wins", []StepStatus{StatusCompleted, StatusCurrent, StatusPending}, 1, true},
		{"first pending", []StepStatus{StatusCompleted, StatusPending, StatusPending}, 1, true},
		{"all completed", []StepStatus{StatusCompleted, StatusCompleted, StatusCompleted}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := threeSteps()
			for i := range steps {
				steps[i].Status = tt.status[i]
			}
			cursor, ok := CursorFromStatuses(steps)
			if cursor != tt.cursor || ok != tt.ok {
				t.Errorf("CursorFromStatuses() = %d, %v, want %d, %v", cursor, ok, tt.cursor, tt.ok)
			}
		})
	}
}
