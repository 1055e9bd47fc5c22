package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `lemma,total_count,first_story,count_in_1_intro,count_in_2_market
кіт,5,1_intro,5,0
пес,3,2_market,0,3
`

func TestParseSample(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Len(t, c.Records, 2)
	assert.Equal(t, []string{"lemma", "total_count", "first_story", "count_in_1_intro", "count_in_2_market"}, c.Header)

	kit := c.Records[0]
	assert.Equal(t, "кіт", kit.Lemma)
	assert.Equal(t, 5, kit.TotalCount)
	assert.Equal(t, "1_intro", kit.FirstStory)
	assert.Equal(t, 5, kit.CountIn("1_intro"))
	assert.Equal(t, 0, kit.CountIn("2_market"))
	assert.Equal(t, 0, kit.CountIn("no_such_story"))

	pes := c.Records[1]
	assert.Equal(t, "пес", pes.Lemma)
	assert.Equal(t, 3, pes.CountIn("2_market"))
}

func TestParseSkipsBlankLines(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_1_intro\n" +
		"кіт,5,1_intro,5\n" +
		"\n" +
		"пес,3,1_intro,3\n" +
		"\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, c.Records, 2)
}

func TestParseCoercesNumericCells(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want int
	}{
		{"plain int", "7", 7},
		{"float export", "7.0", 7},
		{"empty", "", 0},
		{"garbage", "багато", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := "lemma,total_count,first_story,count_in_1_intro\n" +
				"кіт," + tt.cell + ",1_intro,1\n"
			c, err := Parse(strings.NewReader(in))
			require.NoError(t, err)
			require.Len(t, c.Records, 1)
			assert.Equal(t, tt.want, c.Records[0].TotalCount)
		})
	}
}

func TestParseRejectsUnbalancedQuote(t *testing.T) {
	in := "lemma,total_count,first_story\n" +
		"\"кіт,5,1_intro\n"
	c, err := Parse(strings.NewReader(in))
	assert.Nil(t, c)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Error(), "parsing summary CSV")
}

func TestParseRejectsMissingRequiredColumn(t *testing.T) {
	in := "lemma,count_in_1_intro\nкіт,5\n"
	_, err := Parse(strings.NewReader(in))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "total_count")
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseHeaderOnly(t *testing.T) {
	c, err := Parse(strings.NewReader("lemma,total_count,first_story\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Records)
	assert.Empty(t, c.Stories)
}
