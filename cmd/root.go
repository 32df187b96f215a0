// Package cmd wires the lista command line: the root command starts a
// TUI session, the demo subcommand runs a scripted walkthrough.
package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/eliduarte/lista/internal/config"
	"github.com/eliduarte/lista/internal/logging"
	"github.com/eliduarte/lista/internal/seed"
	todoservice "github.com/eliduarte/lista/internal/services/todo"
	"github.com/eliduarte/lista/internal/store"
	"github.com/eliduarte/lista/internal/tui"
)

// version is overridden at build time via
// -ldflags "-X github.com/eliduarte/lista/cmd.version=v1.2.3"
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "lista",
	Short: "Lista - a terminal todo list for one session",
	Long: `Lista is a terminal todo list. Todos live in memory for the
duration of the session and are gone when you quit.

Examples:
  # Start an empty session
  lista

  # Start with todos loaded from a fixture file
  lista --seed todos.yaml

  # Override the theme for this session
  lista --theme wave.yaml
`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().String("config", "", "Config file path (defaults to the XDG config dir)")
	rootCmd.Flags().String("theme", "", "Theme file merged over the configured colors")
	rootCmd.Flags().String("seed", "", "YAML fixture loaded into the session at startup")
	rootCmd.AddCommand(demoCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	themePath, _ := cmd.Flags().GetString("theme")
	seedPath, _ := cmd.Flags().GetString("seed")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if themePath != "" {
		if err := cfg.MergeThemeFile(themePath); err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}
	}

	svc := todoservice.NewService(store.New())

	if seedPath != "" {
		fixture, err := seed.Load(seedPath)
		if err != nil {
			return err
		}
		ids, err := fixture.Apply(svc)
		if err != nil {
			return fmt.Errorf("applying seed: %w", err)
		}
		slog.Info("seeded session", "file", seedPath, "todos", len(ids))
	}

	p := tea.NewProgram(tui.NewModel(svc, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
