package notification

import (
	"errors"
	"testing"
)

type notifyCall struct {
	title   string
	message string
	icon    any
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []notifyCall
	err   error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, notifyCall{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{"successful notification", "Title", "Message", nil, false},
		{"notification error", "Title", "Message", errors.New("notification failed"), true},
		{"empty title", "", "Message with empty title", nil, false},
		{"unicode content", "通知", "🎉 done", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)
			if (err != nil) != tt.expectError {
				t.Errorf("Send() error = %v, expectError %v", err, tt.expectError)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.title || call.message != tt.message {
				t.Errorf("call = %+v, want title %q message %q", call, tt.title, tt.message)
			}
			if call.icon != "" {
				t.Errorf("icon = %v, want platform default", call.icon)
			}
		})
	}
}

func TestWorkflowCompleted(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := WorkflowCompleted("Trendcast"); err != nil {
		t.Fatalf("WorkflowCompleted() error = %v", err)
	}
	if len(mock.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.calls))
	}
	if got := mock.calls[0]; got.title != AppName || got.message != "Trendcast is complete" {
		t.Errorf("call = %+v", got)
	}
}
