package workflow

import (
	"fmt"
	"strings"
)

// ValidationError describes a single validation problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a Config for errors and returns all problems found.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	ids := make(map[string]bool)
	routes := make(map[string]string)
	for i, d := range cfg.Workflows {
		prefix := fmt.Sprintf("workflows[%d]", i)

		if d.ID == "" {
			errs = append(errs, ValidationError{Field: prefix + ".id", Message: "id is required"})
		} else if ids[d.ID] {
			errs = append(errs, ValidationError{Field: prefix + ".id", Message: fmt.Sprintf("duplicate id %q", d.ID)})
		}
		ids[d.ID] = true

		if d.Name == "" {
			errs = append(errs, ValidationError{Field: prefix + ".name", Message: "name is required"})
		}

		switch {
		case d.Route == "":
			errs = append(errs, ValidationError{Field: prefix + ".route", Message: "route is required"})
		case !strings.HasPrefix(d.Route, "/"):
			errs = append(errs, ValidationError{Field: prefix + ".route", Message: fmt.Sprintf("route %q must start with /", d.Route)})
		default:
			if other, ok := routes[d.Route]; ok {
				errs = append(errs, ValidationError{
					Field:   prefix + ".route",
					Message: fmt.Sprintf("route %q is already used by workflow %q", d.Route, other),
				})
			}
			routes[d.Route] = d.ID
		}

		errs = append(errs, validateSteps(prefix, d.Steps)...)
	}

	return errs
}

func validateSteps(prefix string, steps []Step) []ValidationError {
	var errs []ValidationError

	if len(steps) == 0 {
		return []ValidationError{{Field: prefix + ".steps", Message: "at least one step is required"}}
	}

	seen := make(map[string]bool)
	for j, s := range steps {
		field := fmt.Sprintf("%s.steps[%d]", prefix, j)
		if s.ID == "" {
			errs = append(errs, ValidationError{Field: field + ".id", Message: "id is required"})
		} else if seen[s.ID] {
			errs = append(errs, ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate step id %q", s.ID)})
		}
		seen[s.ID] = true

		if s.Title == "" {
			errs = append(errs, ValidationError{Field: field + ".title", Message: "title is required"})
		}
		if !s.Type.Valid() {
			errs = append(errs, ValidationError{
				Field:   field + ".type",
				Message: fmt.Sprintf("unknown step type %q (must be form, processing, or approval)", s.Type),
			})
		}
		if !s.Status.Valid() {
			errs = append(errs, ValidationError{
				Field:   field + ".status",
				Message: fmt.Sprintf("unknown status %q (must be pending, current, or completed)", s.Status),
			})
		}
		if s.Estimate != nil && s.Type != StepProcessing {
			errs = append(errs, ValidationError{Field: field + ".estimate", Message: "estimate only applies to processing steps"})
		}
	}
	return errs
}
