package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/odarka/kazky/internal/corpus"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query [lemma_summary.csv]",
	Short: "Query the lemma table and print matching rows",
	Long: `Run a one-shot query against a lemma summary and print the matching
rows to stdout, the same filtering and sorting the TUI applies.

Examples:
  kazky query --filter кіт
  kazky query --story "01 Про бідного парубка" --first-only
  kazky query --sort alpha --limit 20 lemma_summary.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

var (
	queryFilter    string
	queryStory     string
	queryFirstOnly bool
	querySort      string
	queryDesc      bool
	queryLimit     int
)

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&queryFilter, "filter", "", "case-insensitive substring to match lemmas against")
	queryCmd.Flags().StringVar(&queryStory, "story", "", "restrict rows to words appearing in this story")
	queryCmd.Flags().BoolVar(&queryFirstOnly, "first-only", false, "only words that first appear in the selected story")
	queryCmd.Flags().StringVar(&querySort, "sort", "freq", "sort field: freq or alpha")
	queryCmd.Flags().BoolVar(&queryDesc, "desc", true, "sort descending")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "row cap (0 uses the default of 1000)")
}

func parseSortField(s string) (corpus.SortField, error) {
	switch strings.ToLower(s) {
	case "freq", "frequency", "count":
		return corpus.SortFrequency, nil
	case "alpha", "alphabetical", "lemma":
		return corpus.SortAlphabetical, nil
	}
	return corpus.SortFrequency, fmt.Errorf("unknown sort field %q (want freq or alpha)", s)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig(getConfigDir())

	source := ""
	if len(args) == 1 {
		source = args[0]
	}

	c, err := loadCorpusFor(cfg, source)
	if err != nil {
		return err
	}

	field, err := parseSortField(querySort)
	if err != nil {
		return err
	}

	if queryFirstOnly && queryStory == "" {
		return fmt.Errorf("--first-only requires --story")
	}

	limit := queryLimit
	if limit <= 0 {
		limit = cfg.RowCap
	}

	sel := corpus.Selection{
		Filter:     queryFilter,
		Story:      queryStory,
		FirstOnly:  queryFirstOnly,
		SortField:  field,
		Descending: queryDesc,
		Limit:      limit,
	}
	result := corpus.Query(c.Records, sel)

	printQueryResult(c, result, sel)
	return nil
}

func printQueryResult(c *corpus.Corpus, result corpus.Result, sel corpus.Selection) {
	countHeader := "Total"
	if sel.Story != "" {
		countHeader = "Count"
	}

	lemmaWidth := runewidth.StringWidth("Lemma")
	for _, rec := range result.Rows {
		if w := runewidth.StringWidth(rec.Lemma); w > lemmaWidth {
			lemmaWidth = w
		}
	}

	fmt.Printf("%s  %7s  %s\n", runewidth.FillRight("Lemma", lemmaWidth), countHeader, "First story")
	for _, rec := range result.Rows {
		marker := " "
		if sel.Story != "" && rec.FirstStory == sel.Story {
			marker = "*"
		}
		fmt.Printf("%s  %7d  %s %s\n",
			runewidth.FillRight(rec.Lemma, lemmaWidth),
			corpus.DisplayCount(rec, sel),
			marker,
			rec.FirstStory)
	}

	if sel.Filter != "" || sel.Story != "" {
		fmt.Fprintf(os.Stderr, "Showing %d of %d matches (%d words total)\n", len(result.Rows), result.Matched, result.Total)
	} else {
		fmt.Fprintf(os.Stderr, "Showing %d of %d words\n", len(result.Rows), result.Total)
	}
	if result.Truncated() {
		fmt.Fprintf(os.Stderr, "Row cap reached, %d matches not shown\n", result.Matched-len(result.Rows))
	}
}
