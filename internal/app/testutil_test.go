package app

import (
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/panta/internal/config"
	"github.com/zhubert/panta/internal/keys"
)

// testNow pins relative times shown in the chat history.
var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

// testConfig creates a config backed by a temp file so Save never touches
// the real home directory.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.SetUser("Ada Lovelace", "ada@example.com")
	return cfg
}

// testModel creates a test Model opened on route.
func testModel(t *testing.T, route string) *Model {
	t.Helper()
	return New(testConfig(t), "0.0.0-test", Options{StartRoute: route, Now: testNow})
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, route string, width, height int) *Model {
	t.Helper()
	m := testModel(t, route)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlB:
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	case keys.AltLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModAlt}
	case keys.AltRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModAlt}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) (*Model, tea.Cmd) {
	result, cmd := m.Update(keyPress(key))
	return result.(*Model), cmd
}

// runCmd executes cmd and feeds a non-batch result back into the model.
func runCmd(m *Model, cmd tea.Cmd) *Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if _, ok := msg.(tea.BatchMsg); ok {
		return m
	}
	result, _ := m.Update(msg)
	return result.(*Model)
}

// flattenBatch returns the commands inside a batch message, or nil.
func flattenBatch(msg tea.Msg) []tea.Cmd {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch
	}
	return nil
}
