package workflow

import (
	"fmt"
	"strings"
)

// GenerateMermaid produces a mermaid stateDiagram-v2 string for a definition.
// Approval steps get a "changes requested" edge back to the previous step.
func GenerateMermaid(def *Definition) string {
	var sb strings.Builder

	sb.WriteString("stateDiagram-v2\n")
	if len(def.Steps) == 0 {
		sb.WriteString("    [*] --> [*]\n")
		return sb.String()
	}

	for _, s := range def.Steps {
		sb.WriteString(fmt.Sprintf("    %s : %s\n", stateName(s), s.Title))
	}

	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", stateName(def.Steps[0])))
	for i, s := range def.Steps {
		if note := formatStepNote(s); note != "" {
			sb.WriteString(fmt.Sprintf("    note right of %s\n        %s\n    end note\n", stateName(s), note))
		}
		if s.Type == StepApproval && i > 0 {
			sb.WriteString(fmt.Sprintf("    %s --> %s : changes requested\n", stateName(s), stateName(def.Steps[i-1])))
		}
		if i+1 < len(def.Steps) {
			sb.WriteString(fmt.Sprintf("    %s --> %s%s\n", stateName(s), stateName(def.Steps[i+1]), edgeLabel(s)))
		} else {
			sb.WriteString(fmt.Sprintf("    %s --> [*]%s\n", stateName(s), edgeLabel(s)))
		}
	}

	return sb.String()
}

// stateName turns a step ID into a mermaid-safe identifier.
func stateName(s Step) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, s.ID)
}

func edgeLabel(s Step) string {
	switch s.Type {
	case StepForm:
		return " : submitted"
	case StepApproval:
		return " : approved"
	case StepProcessing:
		return " : done"
	}
	return ""
}

func formatStepNote(s Step) string {
	var parts []string
	parts = append(parts, string(s.Type))
	if s.Estimate != nil {
		parts = append(parts, fmt.Sprintf("estimate: %s", s.Estimate.Duration))
	}
	return strings.Join(parts, ", ")
}
