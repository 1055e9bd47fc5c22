package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/odarka/kazky/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [lemma_summary.csv]",
	Short: "Browse a lemma summary in the TUI",
	Long: `Load a lemma summary CSV and browse it in an interactive terminal UI.
Without an argument the configured corpus path is used. The source may
also be an http(s) URL.

Controls:
  ↑/↓ or j/k    Navigate rows
  /             Filter words
  s/S           Next/previous story
  f             Only words first appearing in the story
  o             Toggle frequency/alphabetical sort
  r             Flip sort direction
  Esc           Back to the sidebar`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	ensureConfigSetup(configDir)
	cfg := loadUserConfig(configDir)

	source := ""
	if len(args) == 1 {
		source = args[0]
	} else {
		source = cfg.CorpusPath
	}

	c, err := loadCorpusFor(cfg, source)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Loaded: %s (%d lemmas, %d stories)\n", source, len(c.Records), len(c.Stories))

	p := tea.NewProgram(
		tui.NewAppWithCorpus(cfg, configDir, c, source),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
