package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanStoryName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Казки Лірника Сашка. 1_intro", "1_intro"},
		{"Казки Лірника Сашка.1_intro", "1_intro"},
		{"1_intro", "1_intro"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanStoryName(tt.in))
	}
}

func TestCleanCSV(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_Казки Лірника Сашка. 1_intro\n" +
		"кіт,5,Казки Лірника Сашка. 1_intro,5\n"

	var out strings.Builder
	require.NoError(t, CleanCSV(strings.NewReader(in), &out))

	c, err := Parse(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, []string{"1_intro"}, c.Stories)
	require.Len(t, c.Records, 1)
	assert.Equal(t, "1_intro", c.Records[0].FirstStory)
	assert.Equal(t, 5, c.Records[0].CountIn("1_intro"))
}

func TestCleanNames(t *testing.T) {
	in := "lemma,total_count,first_story,count_in_Казки Лірника Сашка. 2_market,count_in_Казки Лірника Сашка. 1_intro\n" +
		"кіт,5,Казки Лірника Сашка. 1_intro,0,5\n"
	c, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	c.CleanNames()

	assert.Equal(t, []string{"1_intro", "2_market"}, c.Stories)
	assert.Equal(t, "1_intro", c.Records[0].FirstStory)
	assert.Equal(t, 5, c.Records[0].CountIn("1_intro"))
	assert.Equal(t, 1, c.Stat("1_intro").NewWords)
}

func TestCleanCSVEmptyInput(t *testing.T) {
	var out strings.Builder
	err := CleanCSV(strings.NewReader(""), &out)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}
