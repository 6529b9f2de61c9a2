package workflow

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template is the default workflows.yaml content with commented optional fields.
const Template = `# PANTA workflow definitions
#
# Workflows listed here are merged with the built-in ones (trendcast,
# content-studio). Reusing a built-in id replaces that workflow.

workflows:
  - id: launch-plan
    name: Launch Plan
    description: Plan a product launch end to end.
    route: /workflows/run/launch-plan   # must sit under a workflow route prefix
    steps:
      - id: goals
        title: Goals
        description: What does a successful launch look like?
        type: form                       # form, processing, or approval
      - id: channels
        title: Channel mix
        type: processing
        estimate: 30s                    # processing steps only
      - id: signoff
        title: Sign-off
        type: approval
        # status: pending                # optional; the cursor decides what is shown
`

// WriteTemplate writes the default workflows.yaml template to dir/.panta/workflows.yaml.
// Returns an error if the file already exists.
func WriteTemplate(dir string) (string, error) {
	fp := FilePath(dir)

	if _, err := os.Stat(fp); err == nil {
		return fp, fmt.Errorf("%s already exists", fp)
	}

	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return fp, fmt.Errorf("failed to create directory %s: %w", filepath.Dir(fp), err)
	}

	if err := os.WriteFile(fp, []byte(Template), 0o644); err != nil {
		return fp, fmt.Errorf("failed to write %s: %w", fp, err)
	}

	return fp, nil
}
