// Package scenarios contains built-in demo scenarios for panta.
package scenarios

import (
	"time"

	"github.com/zhubert/panta/internal/demo"
)

// Dashboard opens the chat landing page: assistants and recent history in
// the sidebar, then filters the history.
var Dashboard = &demo.Scenario{
	Name:        "dashboard",
	Description: "Chat pane with assistants and history, then filter history",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Annotate("Chat routes open the assistants and history pane"),
		demo.Wait(1500 * time.Millisecond),
		demo.Key("/"),
		demo.Type("churn"),
		demo.Annotate("Filter history as you type"),
		demo.Wait(1 * time.Second),
		demo.Key("enter"),
		demo.Key("1"),
		demo.Annotate("Switch to the navigation pane without leaving the page"),
		demo.Wait(1 * time.Second),
	},
}

// Trendcast walks a workflow: the sidebar tracks progress as steps complete.
var Trendcast = &demo.Scenario{
	Name:        "trendcast",
	Description: "Workflow pane tracking progress through Trendcast",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Route:     "/trendcast",
		UserName:  "Ada Lovelace",
		UserEmail: "ada@example.com",
	},
	Steps: []demo.Step{
		demo.Annotate("Workflow routes show the step list"),
		demo.Wait(1 * time.Second),
		demo.KeyWithDesc("n", "Complete the first step"),
		demo.Annotate("Step 2 of 3"),
		demo.Wait(1 * time.Second),
		demo.Key("n"),
		demo.Wait(800 * time.Millisecond),
		demo.Key("n"),
		demo.Annotate("Completing the last step finishes the run"),
		demo.Wait(1500 * time.Millisecond),
	},
}

// Collapse toggles the sidebar down to the icon rail and back.
var Collapse = &demo.Scenario{
	Name:        "collapse",
	Description: "Collapse the sidebar to an icon rail and expand it again",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Wait(800 * time.Millisecond),
		demo.Key("ctrl+b"),
		demo.Annotate("ctrl+b collapses the sidebar to icons"),
		demo.Wait(1200 * time.Millisecond),
		demo.Navigate("/templates"),
		demo.Wait(800 * time.Millisecond),
		demo.Key("ctrl+b"),
		demo.Annotate("Expanding shows the pane for the current route"),
		demo.Wait(1200 * time.Millisecond),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Dashboard,
		Trendcast,
		Collapse,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
