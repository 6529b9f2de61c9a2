package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindRoute, "route error"},
		{KindWorkflow, "workflow error"},
		{KindClipboard, "clipboard error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "nav.Navigate", Context: "bad path", Err: errors.New("boom")},
			expected: "nav.Navigate: bad path: boom",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "nav.Navigate", Err: errors.New("boom")},
			expected: "nav.Navigate: boom",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("boom")},
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextBecomesErrorWithoutUnderlying(t *testing.T) {
	err := E(Op("config.Validate"), KindInvalid, "routes must start with /")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("E() returned %T, want *Error", err)
	}
	if e.Context != "" {
		t.Errorf("Context = %q, want empty", e.Context)
	}
	if e.Err == nil || e.Err.Error() != "routes must start with /" {
		t.Errorf("Err = %v, want context text", e.Err)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching kind", E(Op("x"), KindNotFound, "missing"), KindNotFound, true},
		{"non-matching kind", E(Op("x"), KindNotFound, "missing"), KindInvalid, false},
		{"plain error", errors.New("plain"), KindNotFound, false},
		{"nil error", nil, KindNotFound, false},
		{"wrapped", fmt.Errorf("outer: %w", E(Op("x"), KindRoute, "bad")), KindRoute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	underlying := errors.New("underlying")
	tests := []struct {
		name  string
		err   error
		kind  Kind
		op    Op
		wraps bool
	}{
		{"ConfigLoadFailed", ConfigLoadFailed("/tmp/c.json", underlying), KindConfig, "config.Load", true},
		{"ConfigSaveFailed", ConfigSaveFailed("/tmp/c.json", underlying), KindConfig, "config.Save", true},
		{"ConfigInvalid", ConfigInvalid("bad"), KindInvalid, "config.Validate", false},
		{"RouteInvalid", RouteInvalid("dashboard"), KindRoute, "nav.Navigate", false},
		{"ModeUnavailable", ModeUnavailable("workflow", "/settings"), KindRoute, "nav.SetOverride", false},
		{"WorkflowNotFound", WorkflowNotFound("trendcast"), KindNotFound, "workflow.Lookup", false},
		{"WorkflowLoadFailed", WorkflowLoadFailed("w.yaml", underlying), KindWorkflow, "workflow.Load", true},
		{"ClipboardUnavailable", ClipboardUnavailable(underlying), KindClipboard, "clipboard.Init", true},
		{"ScenarioNotFound", ScenarioNotFound("nope"), KindNotFound, "demo.Get", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("kind = %v, want %v", GetKind(tt.err), tt.kind)
			}
			var e *Error
			if !errors.As(tt.err, &e) {
				t.Fatalf("expected *Error, got %T", tt.err)
			}
			if e.Op != tt.op {
				t.Errorf("Op = %q, want %q", e.Op, tt.op)
			}
			if got := errors.Is(tt.err, underlying); got != tt.wraps {
				t.Errorf("wraps underlying = %v, want %v", got, tt.wraps)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	inner := errors.New("original")
	middle := E(Op("middle.Op"), KindIO, inner)
	outer := E(Op("outer.Op"), KindConfig, middle)

	if !errors.Is(outer, inner) {
		t.Error("should find inner error through chain")
	}
	if GetKind(outer) != KindConfig {
		t.Error("GetKind should return the outermost kind")
	}
}
