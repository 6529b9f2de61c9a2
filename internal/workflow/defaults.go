package workflow

import "time"

// DefaultConfig returns the built-in workflows.
func DefaultConfig() *Config {
	research := Duration{45 * time.Second}
	render := Duration{2 * time.Minute}

	return &Config{
		Workflows: []Definition{
			{
				ID:          "trendcast",
				Name:        "Trendcast",
				Description: "Turn a trending topic into a scheduled social campaign.",
				Route:       "/trendcast",
				Steps: []Step{
					{ID: "topic", Title: "Pick a topic", Description: "Choose a trend and target audience.", Type: StepForm},
					{ID: "research", Title: "Research", Description: "Collect sources and angles for the trend.", Type: StepProcessing, Estimate: &research},
					{ID: "review", Title: "Review draft", Description: "Approve or request changes to the posts.", Type: StepApproval},
				},
			},
			{
				ID:          "content-studio",
				Name:        "Content Studio",
				Description: "Draft, render and publish long-form content.",
				Route:       "/content-studio",
				Steps: []Step{
					{ID: "brief", Title: "Brief", Description: "Describe the piece and its tone.", Type: StepForm},
					{ID: "outline", Title: "Outline", Description: "Generate a section outline.", Type: StepProcessing, Estimate: &research},
					{ID: "draft", Title: "Draft", Description: "Write each section.", Type: StepProcessing, Estimate: &render},
					{ID: "approve", Title: "Approve", Description: "Sign off before publishing.", Type: StepApproval},
				},
			},
		},
	}
}

// Merge combines user definitions with defaults. A user definition replaces
// the default with the same ID in place; new IDs are appended in file order.
// Empty fields of a replacing definition are filled from the default.
func Merge(partial, defaults *Config) *Config {
	byID := make(map[string]Definition, len(partial.Workflows))
	for _, d := range partial.Workflows {
		byID[d.ID] = d
	}

	result := &Config{}
	used := make(map[string]bool)
	for _, def := range defaults.Workflows {
		d, ok := byID[def.ID]
		if !ok {
			result.Workflows = append(result.Workflows, def)
			continue
		}
		used[def.ID] = true
		if d.Name == "" {
			d.Name = def.Name
		}
		if d.Description == "" {
			d.Description = def.Description
		}
		if d.Route == "" {
			d.Route = def.Route
		}
		// Steps are not merged; user steps fully replace defaults.
		if len(d.Steps) == 0 {
			d.Steps = def.Steps
		}
		result.Workflows = append(result.Workflows, d)
	}

	for _, d := range partial.Workflows {
		if !used[d.ID] {
			result.Workflows = append(result.Workflows, d)
		}
	}
	return result
}
