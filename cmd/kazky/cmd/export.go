package cmd

import (
	"fmt"
	"os"

	"github.com/odarka/kazky/internal/corpus"
	"github.com/odarka/kazky/internal/deck"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [lemma_summary.csv]",
	Short: "Export matching words as an Anki deck",
	Long: `Run a query against the lemma summary and write the matching words to
an Anki .apkg package. Each note carries the lemma, its occurrence
counts, and the story it first appears in.

Examples:
  kazky export -o kazky.apkg
  kazky export --story "01 Про бідного парубка" --first-only -o new_words.apkg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportFilter    string
	exportStory     string
	exportFirstOnly bool
	exportLimit     int
	exportOutput    string
	exportDeckName  string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFilter, "filter", "", "case-insensitive substring to match lemmas against")
	exportCmd.Flags().StringVar(&exportStory, "story", "", "restrict to words appearing in this story")
	exportCmd.Flags().BoolVar(&exportFirstOnly, "first-only", false, "only words that first appear in the selected story")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "cap the number of exported notes (0 means no extra cap)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "kazky.apkg", "output .apkg file")
	exportCmd.Flags().StringVar(&exportDeckName, "deck", "Казки Лірника Сашка", "deck name inside the package")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig(getConfigDir())

	source := ""
	if len(args) == 1 {
		source = args[0]
	}

	c, err := loadCorpusFor(cfg, source)
	if err != nil {
		return err
	}

	if exportFirstOnly && exportStory == "" {
		return fmt.Errorf("--first-only requires --story")
	}

	limit := exportLimit
	if limit <= 0 {
		// Export everything that matches rather than the display cap.
		limit = len(c.Records)
	}

	sel := corpus.Selection{
		Filter:     exportFilter,
		Story:      exportStory,
		FirstOnly:  exportFirstOnly,
		SortField:  corpus.SortFrequency,
		Descending: true,
		Limit:      limit,
	}
	result := corpus.Query(c.Records, sel)
	if len(result.Rows) == 0 {
		return fmt.Errorf("no words match the selection")
	}

	notes := make([]deck.Note, 0, len(result.Rows))
	for _, rec := range result.Rows {
		notes = append(notes, deck.Note{
			Lemma:      rec.Lemma,
			Counts:     countsField(rec, sel),
			FirstStory: rec.FirstStory,
		})
	}

	if err := deck.Write(exportOutput, exportDeckName, notes); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d notes to %s\n", len(notes), exportOutput)
	return nil
}

// countsField renders the back-of-card count summary for a record.
func countsField(rec corpus.Record, sel corpus.Selection) string {
	if sel.Story != "" {
		return fmt.Sprintf("%d in %s (%d total)", rec.CountIn(sel.Story), sel.Story, rec.TotalCount)
	}
	return fmt.Sprintf("%d total", rec.TotalCount)
}
