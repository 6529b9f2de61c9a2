// Package workflow provides multi-step workflow definitions, the progress
// model the sidebar renders for them, and runs that move a cursor through a
// definition's steps.
//
// Definitions are built in and may be extended or replaced per project in
// .panta/workflows.yaml.
package workflow

import (
	"fmt"
	"strings"
	"time"

	pantaerrors "github.com/zhubert/panta/internal/errors"
)

// Config is the top-level workflow file.
type Config struct {
	Workflows []Definition `yaml:"workflows"`
}

// Definition describes one workflow and the route that hosts it.
type Definition struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Route       string `yaml:"route"`
	Steps       []Step `yaml:"steps"`
}

// Lookup returns the definition with the given ID.
func (c *Config) Lookup(id string) (*Definition, error) {
	for i := range c.Workflows {
		if c.Workflows[i].ID == id {
			return &c.Workflows[i], nil
		}
	}
	return nil, pantaerrors.WorkflowNotFound(id)
}

// ForRoute returns the definition whose route is the longest prefix of path,
// or nil when none matches.
func (c *Config) ForRoute(path string) *Definition {
	var best *Definition
	for i := range c.Workflows {
		d := &c.Workflows[i]
		if d.Route == "" || !strings.HasPrefix(path, d.Route) {
			continue
		}
		if best == nil || len(d.Route) > len(best.Route) {
			best = d
		}
	}
	return best
}

// Routes returns every route hosting a workflow, in definition order.
func (c *Config) Routes() []string {
	var out []string
	for _, d := range c.Workflows {
		if d.Route != "" {
			out = append(out, d.Route)
		}
	}
	return out
}

// Duration is a wrapper around time.Duration that implements YAML unmarshaling
// from human-readable strings like "30s", "2m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}
