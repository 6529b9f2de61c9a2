package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zhubert/panta/internal/nav"
	"github.com/zhubert/panta/internal/workflow"
)

var routesRepoPath string

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Inspect route-to-mode resolution",
	Long: `Commands for checking which sidebar mode a route resolves to.
Route lists come from ~/.panta/config.json when set, otherwise the built-in
lists are used. Workflow routes from the project's .panta/workflows.yaml are
listed alongside the built-in ones.`,
}

var routesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known routes and their sidebar mode",
	RunE:  runRoutesList,
}

var routesResolveCmd = &cobra.Command{
	Use:   "resolve <path>...",
	Short: "Resolve paths to a sidebar mode",
	Long: `Prints the mode each path resolves to. Chat prefixes are checked
before workflow prefixes, so a path matching both resolves to chat.

Examples:
  panta routes resolve /dashboard
  panta routes resolve /trendcast /admin/tenants`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoutesResolve,
}

func init() {
	routesCmd.PersistentFlags().StringVar(&routesRepoPath, "repo", ".", "Path to the project")
	routesCmd.AddCommand(routesListCmd)
	routesCmd.AddCommand(routesResolveCmd)
	rootCmd.AddCommand(routesCmd)
}

// configuredResolver builds the resolver from the user's route overrides.
func configuredResolver() (*nav.Resolver, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	routes := cfg.GetRoutes()
	return nav.NewResolver(nav.DefaultRouteTable().WithOverrides(routes.Chat, routes.Workflow)), nil
}

func runRoutesList(cmd *cobra.Command, _ []string) error {
	resolver, err := configuredResolver()
	if err != nil {
		return err
	}
	workflows, err := workflow.LoadAndMerge(routesRepoPath)
	if err != nil {
		return fmt.Errorf("failed to load workflow config: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Route", "Mode", "Available"})

	seen := make(map[string]bool)
	add := func(route string) {
		if seen[route] {
			return
		}
		seen[route] = true
		t.AppendRow(table.Row{route, resolver.Resolve(route), modeList(resolver.Available(route))})
	}
	for _, r := range nav.KnownRoutes() {
		add(r)
	}
	for _, r := range workflows.Routes() {
		add(r)
	}

	t.Render()
	return nil
}

func runRoutesResolve(cmd *cobra.Command, args []string) error {
	resolver, err := configuredResolver()
	if err != nil {
		return err
	}
	for _, arg := range args {
		path, err := nav.Normalize(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, resolver.Resolve(path))
	}
	return nil
}

func modeList(modes []nav.Mode) string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
