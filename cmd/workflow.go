package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zhubert/panta/internal/workflow"
)

var (
	workflowRepoPath string
	workflowID       string
	workflowNoColor  bool
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Manage workflow definitions",
	Long:  `Commands for creating, validating and inspecting .panta/workflows.yaml files.`,
}

var workflowInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a .panta/workflows.yaml template",
	Long: `Creates a .panta/workflows.yaml file with a commented example workflow.
Definitions in the file replace built-ins with the same id and add new ones.

Examples:
  panta workflow init                   # Initialize in current directory
  panta workflow init --repo /path/to/project`,
	RunE: runWorkflowInit,
}

var workflowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workflows with their routes and step counts",
	RunE:  runWorkflowList,
}

var workflowValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate .panta/workflows.yaml",
	Long:  `Loads and validates the workflow file merged over the built-in workflows.`,
	RunE:  runWorkflowValidate,
}

var workflowVisualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Generate mermaid diagram of a workflow",
	Long:  `Generates a mermaid stateDiagram-v2 for one workflow (--id) or all of them and prints it to stdout.`,
	RunE:  runWorkflowVisualize,
}

var workflowShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged workflow definitions as YAML",
	RunE:  runWorkflowShow,
}

func init() {
	workflowCmd.PersistentFlags().StringVar(&workflowRepoPath, "repo", ".", "Path to the project")
	workflowVisualizeCmd.Flags().StringVar(&workflowID, "id", "", "Workflow id (default: all)")
	workflowShowCmd.Flags().StringVar(&workflowID, "id", "", "Workflow id (default: all)")
	workflowShowCmd.Flags().BoolVar(&workflowNoColor, "no-color", false, "Disable syntax highlighting")

	workflowCmd.AddCommand(workflowInitCmd)
	workflowCmd.AddCommand(workflowListCmd)
	workflowCmd.AddCommand(workflowValidateCmd)
	workflowCmd.AddCommand(workflowVisualizeCmd)
	workflowCmd.AddCommand(workflowShowCmd)
	rootCmd.AddCommand(workflowCmd)
}

func runWorkflowInit(cmd *cobra.Command, _ []string) error {
	fp, err := workflow.WriteTemplate(workflowRepoPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", fp)
	return nil
}

func runWorkflowList(cmd *cobra.Command, _ []string) error {
	cfg, err := workflow.LoadAndMerge(workflowRepoPath)
	if err != nil {
		return fmt.Errorf("failed to load workflow config: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Route", "Steps"})
	for _, d := range cfg.Workflows {
		t.AppendRow(table.Row{d.ID, d.Name, d.Route, len(d.Steps)})
	}
	t.Render()
	return nil
}

func runWorkflowValidate(cmd *cobra.Command, _ []string) error {
	partial, err := workflow.Load(workflowRepoPath)
	if err != nil {
		return fmt.Errorf("failed to load workflow config: %w", err)
	}

	cfg := workflow.DefaultConfig()
	if partial == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "No .panta/workflows.yaml found, using defaults.")
	} else {
		cfg = workflow.Merge(partial, cfg)
	}

	errs := workflow.Validate(cfg)
	if len(errs) == 0 {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Workflow configuration is valid.")
		for _, d := range cfg.Workflows {
			fmt.Fprintf(out, "  %s: %s (%d steps)\n", d.ID, d.Route, len(d.Steps))
		}
		return nil
	}

	var sb strings.Builder
	sb.WriteString("Workflow configuration has errors:\n")
	for _, e := range errs {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", e.Field, e.Message))
	}
	return fmt.Errorf("%s", sb.String())
}

// selectedWorkflows returns every merged definition, or only the one named
// by --id.
func selectedWorkflows() ([]workflow.Definition, error) {
	cfg, err := workflow.LoadAndMerge(workflowRepoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow config: %w", err)
	}
	if workflowID == "" {
		return cfg.Workflows, nil
	}
	def, err := cfg.Lookup(workflowID)
	if err != nil {
		return nil, err
	}
	return []workflow.Definition{*def}, nil
}

func runWorkflowVisualize(cmd *cobra.Command, _ []string) error {
	defs, err := selectedWorkflows()
	if err != nil {
		return err
	}
	for i := range defs {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintln(cmd.OutOrStdout(), workflow.GenerateMermaid(&defs[i]))
	}
	return nil
}

func runWorkflowShow(cmd *cobra.Command, _ []string) error {
	defs, err := selectedWorkflows()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(workflow.Config{Workflows: defs})
	if err != nil {
		return err
	}
	return writeYAML(cmd.OutOrStdout(), string(data), !workflowNoColor && isTerminal(cmd.OutOrStdout()))
}

// writeYAML prints source, highlighted for terminals.
func writeYAML(w io.Writer, source string, color bool) error {
	if !color {
		_, err := io.WriteString(w, source)
		return err
	}
	return quick.Highlight(w, source, "yaml", "terminal256", "monokai")
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
