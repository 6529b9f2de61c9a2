package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/panta/internal/app"
	"github.com/zhubert/panta/internal/config"
	"github.com/zhubert/panta/internal/logger"
	"github.com/zhubert/panta/internal/workflow"
)

var (
	debugMode             bool
	quietMode             bool
	startRoute            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "panta",
	Short: "Terminal navigation shell for the PANTA workspace",
	Long: `panta is a terminal navigation shell. The sidebar switches between
navigation, chat and workflow panes depending on the current route, and
collapses to an icon rail with ctrl+b.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVarP(&startRoute, "route", "r", "", "Route to open on launch (default from config)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("panta %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("panta %s\n", version)
}

// loadConfig reads the user config and builds the resolver inputs shared by
// the TUI and the routes command.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error reading working directory: %w", err)
	}
	workflows, err := workflow.LoadAndMerge(wd)
	if err != nil {
		return fmt.Errorf("error loading workflows: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m := app.New(cfg, version, app.Options{
		StartRoute: startRoute,
		Workflows:  workflows,
	})
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
