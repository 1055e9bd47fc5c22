package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/odarka/kazky/internal/tui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive terminal UI, the same as running kazky with no
arguments.

Controls:
  1-5     Switch views
  Tab     Toggle sidebar focus
  ?       Help
  q       Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	ensureConfigSetup(configDir)
	cfg := loadUserConfig(configDir)

	p := tea.NewProgram(
		tui.NewApp(cfg, configDir),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
