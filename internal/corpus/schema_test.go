package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryOrderByLeadingDigits(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_10_last,count_in_2_market,count_in_bonus,count_in_1_intro,count_in_extra\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	// Numbered stories ascending, unnumbered after them in encounter
	// order.
	assert.Equal(t, []string{"1_intro", "2_market", "10_last", "bonus", "extra"}, c.Stories)
}

func TestStorySetMatchesCountColumns(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"1_intro", "2_market"}, c.Stories)
	assert.Equal(t, "1_intro", c.DefaultStory())
}

func TestStoryStats(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_1_intro,count_in_2_market\n" +
		"кіт,5,1_intro,5,0\n" +
		"пес,3,2_market,0,3\n" +
		"хата,4,1_intro,2,2\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	intro := c.Stat("1_intro")
	assert.Equal(t, 7, intro.TotalWords)
	assert.Equal(t, 2, intro.NewWords)

	market := c.Stat("2_market")
	assert.Equal(t, 5, market.TotalWords)
	assert.Equal(t, 1, market.NewWords)
}

func TestStoryStatsIgnoreUnknownFirstStory(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_1_intro\n" +
		"кіт,5,ghost_story,5\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	// A first_story outside the derived set is tolerated silently: it
	// simply never counts as a first appearance anywhere.
	assert.Equal(t, 0, c.Stat("1_intro").NewWords)
}

func TestSortedStories(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_1_intro,count_in_2_market,count_in_3_forest\n" +
		"кіт,5,2_market,1,3,1\n" +
		"пес,3,3_forest,0,1,2\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"1_intro", "2_market", "3_forest"}, c.SortedStories(StorySortName))
	assert.Equal(t, []string{"2_market", "3_forest", "1_intro"}, c.SortedStories(StorySortTotalWords))
	assert.Equal(t, []string{"2_market", "3_forest", "1_intro"}, c.SortedStories(StorySortNewWords))
}

func TestSortedStoriesDoesNotMutateDerivedOrder(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	_ = c.SortedStories(StorySortTotalWords)
	assert.Equal(t, []string{"1_intro", "2_market"}, c.Stories)
}
