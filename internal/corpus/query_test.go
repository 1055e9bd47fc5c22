package corpus

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) *Corpus {
	t.Helper()
	c, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	return c
}

func lemmas(rows []Record) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Lemma
	}
	return out
}

func TestQueryEmptySelectionIsIdentity(t *testing.T) {
	c := loadSample(t)

	res := Query(c.Records, Selection{SortField: SortAlphabetical})
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 2, res.Total)
	assert.ElementsMatch(t, []string{"кіт", "пес"}, lemmas(res.Rows))
	assert.False(t, res.Truncated())
}

func TestQueryTextFilterCaseInsensitive(t *testing.T) {
	c := loadSample(t)

	for _, filter := range []string{"кі", "КІ"} {
		res := Query(c.Records, Selection{Filter: filter})
		assert.Equal(t, []string{"кіт"}, lemmas(res.Rows), "filter %q", filter)
	}
}

func TestQueryStoryFilter(t *testing.T) {
	c := loadSample(t)

	// Story selected, any appearance.
	res := Query(c.Records, Selection{Story: "1_intro"})
	assert.Equal(t, []string{"кіт"}, lemmas(res.Rows))

	// First appearance only.
	res = Query(c.Records, Selection{Story: "2_market", FirstOnly: true})
	assert.Equal(t, []string{"пес"}, lemmas(res.Rows))
}

func TestQueryFirstOnlyMatchesNewWordsStat(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_1_intro,count_in_2_market\n" +
		"кіт,5,1_intro,5,1\n" +
		"пес,3,2_market,0,3\n" +
		"хата,4,1_intro,2,2\n" +
		"ліс,2,2_market,0,2\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	for _, story := range c.Stories {
		res := Query(c.Records, Selection{Story: story, FirstOnly: true})
		assert.Equal(t, c.Stat(story).NewWords, res.Matched, "story %s", story)
	}
}

func TestQueryUnknownFirstStoryNeverMatchesFirstOnly(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_1_intro\n" +
		"кіт,5,ghost_story,5\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	res := Query(c.Records, Selection{Story: "1_intro", FirstOnly: true})
	assert.Empty(t, res.Rows)
	assert.Equal(t, 0, res.Matched)
}

func TestQueryFrequencyDescendingIsMonotonic(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("lemma,total_count,first_story,count_in_1_intro\n")
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, "слово%d,%d,1_intro,%d\n", i, (i*37)%23, i%7)
	}
	c, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)

	res := Query(c.Records, Selection{SortField: SortFrequency, Descending: true})
	counts := make([]int, len(res.Rows))
	for i, r := range res.Rows {
		counts[i] = r.TotalCount
	}
	assert.True(t, isNonIncreasing(counts), "counts not non-increasing: %v", counts)
}

func isNonIncreasing(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[i-1] {
			return false
		}
	}
	return true
}

func TestQueryFrequencyUsesStoryCountWhenStorySelected(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_1_intro\n" +
		"кіт,10,1_intro,1\n" +
		"пес,2,1_intro,9\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	res := Query(c.Records, Selection{Story: "1_intro", SortField: SortFrequency, Descending: true})
	assert.Equal(t, []string{"пес", "кіт"}, lemmas(res.Rows))

	sel := Selection{Story: "1_intro"}
	assert.Equal(t, 9, DisplayCount(res.Rows[0], sel))
	assert.Equal(t, 2, DisplayCount(res.Rows[0], Selection{}))
}

func TestQueryAscendingReversedEqualsDescending(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("lemma,total_count,first_story,count_in_1_intro\n")
	for i := 0; i < 30; i++ {
		// Distinct counts so the round-trip law is independent of
		// tie-break order.
		fmt.Fprintf(&sb, "слово%02d,%d,1_intro,1\n", i, 100+(i*53)%977)
	}
	c, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)

	for _, field := range []SortField{SortFrequency, SortAlphabetical} {
		asc := Query(c.Records, Selection{SortField: field})
		desc := Query(c.Records, Selection{SortField: field, Descending: true})

		reversed := lemmas(asc.Rows)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		assert.Equal(t, lemmas(desc.Rows), reversed, "field %s", field)
	}
}

func TestQueryCap(t *testing.T) {
	records := make([]Record, 1200)
	for i := range records {
		records[i] = Record{Lemma: fmt.Sprintf("слово%04d", i), TotalCount: i}
	}

	res := Query(records, Selection{})
	assert.Len(t, res.Rows, DefaultCap)
	assert.Equal(t, 1200, res.Matched)
	assert.Equal(t, 1200, res.Total)
	assert.True(t, res.Truncated())

	res = Query(records, Selection{Limit: 10})
	assert.Len(t, res.Rows, 10)
	assert.Equal(t, 1200, res.Matched)

	res = Query(records[:5], Selection{})
	assert.Len(t, res.Rows, 5)
	assert.False(t, res.Truncated())
}

func TestQueryStableForEqualKeys(t *testing.T) {
	records := []Record{
		{Lemma: "перший", TotalCount: 3},
		{Lemma: "другий", TotalCount: 3},
		{Lemma: "третій", TotalCount: 3},
	}

	res := Query(records, Selection{SortField: SortFrequency})
	assert.Equal(t, []string{"перший", "другий", "третій"}, lemmas(res.Rows))
}

func TestQueryNoMatches(t *testing.T) {
	c := loadSample(t)

	res := Query(c.Records, Selection{Filter: "дракон"})
	assert.Empty(t, res.Rows)
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 2, res.Total)
}
