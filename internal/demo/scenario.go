// Package demo drives the shell through scripted key presses and captures
// frames for documentation recordings. Scenarios run against the real app
// model with a pinned clock, so output is reproducible.
package demo

import (
	"fmt"
	"time"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepNavigate moves the router directly, as a link click would.
	StepNavigate
	// StepResize sends a new terminal size.
	StepResize
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepNavigate
	Route string

	// For StepResize
	Width  int
	Height int

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Route opened before the first frame
	Route string

	// Theme name; empty keeps the default
	Theme string

	UserName  string
	UserEmail string

	// Now pins relative times in the chat history
	Now time.Time

	// Initial focus (sidebar or page)
	Focus string
}

// demoNow is the fixed clock used when a setup does not pin one.
var demoNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Route:     "/dashboard",
		UserName:  "Ada Lovelace",
		UserEmail: "ada@example.com",
		Now:       demoNow,
		Focus:     "sidebar",
	}
}

// Validate checks that the scenario is valid and fills defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Now.IsZero() {
		s.Setup.Now = demoNow
	}
	if s.Setup.Focus != "" && s.Setup.Focus != "sidebar" && s.Setup.Focus != "page" {
		return &ValidationError{Field: "Setup.Focus", Message: "must be sidebar or page"}
	}
	for i, step := range s.Steps {
		if step.Type == StepNavigate && step.Route == "" {
			return &ValidationError{Field: "Steps", Message: fmt.Sprintf("navigate step %d has no route", i)}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Navigate creates a step that opens route.
func Navigate(route string) Step {
	return Step{
		Type:  StepNavigate,
		Route: route,
	}
}

// Resize creates a terminal resize step.
func Resize(width, height int) Step {
	return Step{
		Type:   StepResize,
		Width:  width,
		Height: height,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
