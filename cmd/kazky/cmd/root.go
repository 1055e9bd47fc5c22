// Package cmd contains all CLI commands for the kazky tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/odarka/kazky/internal/config"
	"github.com/odarka/kazky/internal/corpus"
	"github.com/odarka/kazky/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kazky",
	Short: "Browse lemma frequencies from the Kazky Lirnyka Sashka tales",
	Long: `kazky is a terminal browser for lemma frequency summaries built from
the "Казки Лірника Сашка" audio tales.

It reads a lemma_summary.csv where each row is a lemma with its total
count, the story it first appears in, and a count_in_<story> column per
story. From there you can filter words, focus on a single story, keep
only the words that first appear there, and sort by frequency or
alphabetically.

Running 'kazky' without arguments launches the interactive TUI.`,
	RunE: runUnifiedTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/kazky)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "kazky")
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("KAZKY")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig loads the YAML config, falling back to defaults when
// the file is absent or broken.
func loadUserConfig(configDir string) *config.Config {
	cfg, err := config.Load(configDir)
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// ensureConfigSetup creates the config directory and writes a default
// config file on first run.
func ensureConfigSetup(configDir string) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return
	}

	cfgPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		config.Save(configDir, config.DefaultConfig())
	}
}

// loadCorpusFor loads a lemma summary for a command, applying the
// configured collection-name cleanup.
func loadCorpusFor(cfg *config.Config, source string) (*corpus.Corpus, error) {
	if source == "" {
		source = cfg.CorpusPath
	}

	c, err := corpus.Load(source)
	if err != nil {
		return nil, err
	}
	if cfg.CleanNames {
		c.CleanNames()
	}
	return c, nil
}

// runUnifiedTUI launches the unified TUI application.
func runUnifiedTUI(cmd *cobra.Command, args []string) error {
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
