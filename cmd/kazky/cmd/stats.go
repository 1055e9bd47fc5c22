package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/odarka/kazky/internal/corpus"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [lemma_summary.csv]",
	Short: "Print per-story vocabulary statistics",
	Long: `Print one line per story with the total word occurrences counted in it
and the number of words that appear there for the first time.

Examples:
  kazky stats
  kazky stats --sort new lemma_summary.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

var statsSort string

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsSort, "sort", "name", "story order: name, words, or new")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig(getConfigDir())

	source := ""
	if len(args) == 1 {
		source = args[0]
	}

	c, err := loadCorpusFor(cfg, source)
	if err != nil {
		return err
	}

	stories := c.SortedStories(corpus.ParseStorySort(statsSort))

	storyWidth := runewidth.StringWidth("Story")
	for _, s := range stories {
		if w := runewidth.StringWidth(s); w > storyWidth {
			storyWidth = w
		}
	}

	fmt.Printf("%s  %6s  %6s\n", runewidth.FillRight("Story", storyWidth), "Words", "New")
	for _, s := range stories {
		st := c.Stat(s)
		fmt.Printf("%s  %6d  %6d\n", runewidth.FillRight(s, storyWidth), st.TotalWords, st.NewWords)
	}

	fmt.Printf("\n%d stories, %d lemmas\n", len(stories), len(c.Records))
	return nil
}
