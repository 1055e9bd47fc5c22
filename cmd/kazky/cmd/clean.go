package cmd

import (
	"fmt"
	"os"

	"github.com/odarka/kazky/internal/corpus"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <input.csv>",
	Short: "Strip the collection prefix from story names in a summary CSV",
	Long: `Rewrite a lemma summary CSV with the "Казки Лірника Сашка. " prefix
removed from story names, both in the count_in_ headers and in the
first_story column. Everything else passes through unchanged.

Example:
  kazky clean raw_summary.csv -o lemma_summary.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

var cleanOutput string

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "output file (default stdout)")
}

func runClean(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out := os.Stdout
	if cleanOutput != "" {
		f, err := os.Create(cleanOutput)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := corpus.CleanCSV(in, out); err != nil {
		return err
	}

	if cleanOutput != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", cleanOutput)
	}
	return nil
}
