// Package errors provides structured error types for panta.
// Errors carry the operation that failed and a Kind so callers can branch
// without matching on message text.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.Function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindRoute
	KindWorkflow
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindRoute:
		return "route error"
	case KindWorkflow:
		return "workflow error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for panta.
type Error struct {
	Op      Op
	Kind    Kind
	Err     error
	Context string
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an Error from any mix of Op, Kind, string (context) and error.
// With no underlying error the context string becomes the error text.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether any error in err's chain has the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of the first structured error in err's chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Route errors
func RouteInvalid(path string) error {
	return E(Op("nav.Navigate"), KindRoute, fmt.Sprintf("invalid route %q", path))
}

func ModeUnavailable(mode, path string) error {
	return E(Op("nav.SetOverride"), KindRoute, fmt.Sprintf("mode %s is not available on %s", mode, path))
}

// Workflow errors
func WorkflowNotFound(id string) error {
	return E(Op("workflow.Lookup"), KindNotFound, fmt.Sprintf("workflow %s not found", id))
}

func WorkflowLoadFailed(path string, err error) error {
	return E(Op("workflow.Load"), KindWorkflow, fmt.Sprintf("failed to load workflows from %s", path), err)
}

// Clipboard errors
func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.Init"), KindClipboard, "system clipboard unavailable", err)
}

// Demo errors
func ScenarioNotFound(name string) error {
	return E(Op("demo.Get"), KindNotFound, fmt.Sprintf("unknown scenario %q", name))
}
