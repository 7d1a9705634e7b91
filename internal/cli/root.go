package cli

import (
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tododeck/internal/api"
	"tododeck/internal/config"
	"tododeck/internal/ui"
)

var apiURL string

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tododeck",
		Short: "Terminal browser for remote todo lists",
		Long: `tododeck is a terminal UI for browsing todo items from a remote
HTTP service. It shows a filterable list (all / open / completed) and a
detail view for the selected item.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "base URL of the todo service")

	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func runTUI() error {
	// Optional debug log; bubbletea owns the terminal so stdout is out.
	if os.Getenv("TODODECK_DEBUG") != "" {
		f, err := tea.LogToFile("tododeck-debug.log", "debug")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	ui.SetTheme(cfg.TUI.Theme)

	client, err := api.NewClientWithURL(apiURL)
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.NewModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("tododeck %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
