package workflow

import "fmt"

// StepType describes what kind of interaction a step needs.
type StepType string

const (
	StepForm       StepType = "form"
	StepProcessing StepType = "processing"
	StepApproval   StepType = "approval"
)

// Valid reports whether t is a known step type.
func (t StepType) Valid() bool {
	switch t {
	case StepForm, StepProcessing, StepApproval:
		return true
	}
	return false
}

// StepStatus is the display status of a step.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusCurrent   StepStatus = "current"
	StatusCompleted StepStatus = "completed"
)

// Valid reports whether s is a known status. The empty status is valid and
// means "not stored".
func (s StepStatus) Valid() bool {
	switch s {
	case "", StatusPending, StatusCurrent, StatusCompleted:
		return true
	}
	return false
}

// Step is one unit of a multi-step workflow.
type Step struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	Type        StepType   `yaml:"type"`
	Status      StepStatus `yaml:"status,omitempty"`
	Estimate    *Duration  `yaml:"estimate,omitempty"` // processing time hint
}

func (s Step) String() string {
	return fmt.Sprintf("%s (%s)", s.Title, s.Type)
}
