package demo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/panta/internal/nav"
)

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}

	if cfg.TypeDelay != 50*time.Millisecond {
		t.Errorf("TypeDelay = %v, want 50ms", cfg.TypeDelay)
	}

	if cfg.KeyDelay != 100*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 100ms", cfg.KeyDelay)
	}

	if cfg.CmdTimeout != 20*time.Millisecond {
		t.Errorf("CmdTimeout = %v, want 20ms", cfg.CmdTimeout)
	}
}

func TestExecutorRun(t *testing.T) {
	scenario := &Scenario{
		Name:        "test",
		Description: "Test scenario",
		Width:       80,
		Height:      24,
		Steps: []Step{
			Wait(100 * time.Millisecond),
			Key("down"),
			Wait(100 * time.Millisecond),
		},
	}

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	executor := NewExecutor(cfg)
	frames, err := executor.Run(scenario)

	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Should have at least the initial frame + frames from steps
	if len(frames) < 4 {
		t.Errorf("Expected at least 4 frames, got %d", len(frames))
	}

	// First frame should have initial delay
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("First frame delay = %v, want 500ms", frames[0].Delay)
	}
}

func TestExecutorRunInvalidScenario(t *testing.T) {
	scenario := &Scenario{
		// Missing Name - should fail validation
		Description: "Invalid",
	}

	executor := NewExecutor(DefaultExecutorConfig())
	_, err := executor.Run(scenario)

	if err == nil {
		t.Error("Run() should return error for invalid scenario")
	}
}

func TestExecutorNoCaptureEveryStep(t *testing.T) {
	scenario := &Scenario{
		Name:   "minimal",
		Width:  80,
		Height: 24,
		Steps: []Step{
			Key("down"),
			Key("down"),
			Key("up"),
			Wait(100 * time.Millisecond),
		},
	}

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true
	framesWithCapture, _ := NewExecutor(cfg).Run(scenario)

	cfg.CaptureEveryStep = false
	framesWithoutCapture, _ := NewExecutor(cfg).Run(scenario)

	if len(framesWithoutCapture) >= len(framesWithCapture) {
		t.Errorf("Expected fewer frames without capture every step: with=%d, without=%d",
			len(framesWithCapture), len(framesWithoutCapture))
	}
}

func TestExecutorSidebarLinkNavigates(t *testing.T) {
	scenario := &Scenario{
		Name:  "link",
		Setup: &ScenarioSetup{Route: "/templates"},
		Steps: []Step{
			Key("down"),
			Key("enter"),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := executor.Model().Route(); got != "/workflows" {
		t.Errorf("Route() = %q, want /workflows", got)
	}
}

func TestExecutorNavigateStep(t *testing.T) {
	scenario := &Scenario{
		Name:  "navigate",
		Steps: []Step{Navigate("/trendcast")},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if executor.Model().Mode() != nav.ModeWorkflow {
		t.Errorf("Mode() = %v, want workflow", executor.Model().Mode())
	}
	if !strings.Contains(ansi.Strip(frames[len(frames)-1].Content), "1 / 3") {
		t.Error("expected 1 / 3 progress after navigating to /trendcast")
	}
}

func TestExecutorNavigateInvalid(t *testing.T) {
	scenario := &Scenario{
		Name:  "bad",
		Steps: []Step{Navigate("bad path")},
	}
	if _, err := NewExecutor(DefaultExecutorConfig()).Run(scenario); err == nil {
		t.Error("expected error for invalid route")
	}
}

func TestExecutorResize(t *testing.T) {
	scenario := &Scenario{
		Name:  "resize",
		Steps: []Step{Resize(90, 30)},
	}
	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	w, h := executor.Model().Size()
	if w != 90 || h != 30 {
		t.Errorf("Size() = %dx%d, want 90x30", w, h)
	}
}

func TestExecutorAnnotation(t *testing.T) {
	scenario := &Scenario{
		Name: "annotate",
		Steps: []Step{
			Annotate("hello"),
			Capture(),
			Capture(),
		},
	}
	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if frames[1].Annotation != "hello" {
		t.Errorf("frame 1 annotation = %q, want hello", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Errorf("annotation should clear after one frame, got %q", frames[2].Annotation)
	}
}

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: time.Second, Annotation: "note"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header, 2 frames, 1 marker)", len(lines))
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 {
		t.Errorf("header = %+v", header)
	}

	var event []any
	if err := json.Unmarshal([]byte(lines[1]), &event); err != nil {
		t.Fatalf("event: %v", err)
	}
	if event[0].(float64) != 0.5 {
		t.Errorf("first event at %v, want 0.5", event[0])
	}
	if !strings.Contains(event[2].(string), "one\r\ntwo") {
		t.Errorf("frame content should use CRLF, got %q", event[2])
	}

	if err := json.Unmarshal([]byte(lines[3]), &event); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if event[1] != "m" || event[2] != "note" || event[0].(float64) != 1.5 {
		t.Errorf("marker = %v", event)
	}
}

func TestKeyPress(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"enter", "enter"},
		{"tab", "tab"},
		{"esc", "esc"},
		{"up", "up"},
		{"ctrl+b", "ctrl+b"},
		{"alt+left", "alt+left"},
		{"n", "n"},
	}
	for _, tt := range tests {
		if got := keyPress(tt.key).String(); got != tt.want {
			t.Errorf("keyPress(%q).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}
