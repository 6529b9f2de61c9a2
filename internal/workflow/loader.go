package workflow

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	pantaerrors "github.com/zhubert/panta/internal/errors"
	"github.com/zhubert/panta/internal/logger"
)

const workflowFileName = "workflows.yaml"
const workflowDir = ".panta"

// FilePath returns the workflow file location under dir.
func FilePath(dir string) string {
	return filepath.Join(dir, workflowDir, workflowFileName)
}

// Load reads and parses .panta/workflows.yaml from dir.
// Returns nil, nil if the file does not exist.
func Load(dir string) (*Config, error) {
	fp := FilePath(dir)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, pantaerrors.WorkflowLoadFailed(fp, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, pantaerrors.WorkflowLoadFailed(fp, err)
	}

	logger.WithComponent("workflow").Debug("loaded workflow file", "path", fp, "workflows", len(cfg.Workflows))
	return &cfg, nil
}

// LoadAndMerge loads the workflow file and merges it with the defaults.
// If no workflow file exists, returns the default config.
func LoadAndMerge(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if cfg == nil {
		return defaults, nil
	}

	return Merge(cfg, defaults), nil
}
