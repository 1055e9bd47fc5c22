package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/odarka/kazky/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const browseSampleCSV = `lemma,total_count,first_story,count_in_01 Перша,count_in_02 Друга
кіт,10,01 Перша,7,3
пес,4,02 Друга,0,4
хата,6,01 Перша,2,4
`

func loadBrowseCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.Parse(strings.NewReader(browseSampleCSV))
	require.NoError(t, err)
	return c
}

func TestBrowseSetCorpusSelectsFirstStory(t *testing.T) {
	m := NewBrowseModel()
	m.SetCorpus(loadBrowseCorpus(t), corpus.StorySortName, 0)

	assert.Equal(t, "01 Перша", m.sel.Story)
	// пес never appears in the first story, so only two rows survive.
	require.Len(t, m.result.Rows, 2)
	assert.Equal(t, "кіт", m.result.Rows[0].Lemma)
	assert.Equal(t, "хата", m.result.Rows[1].Lemma)
}

func TestBrowseCycleStoryToAll(t *testing.T) {
	m := NewBrowseModel()
	m.SetCorpus(loadBrowseCorpus(t), corpus.StorySortName, 0)

	// Two steps from the first story wraps past the second to "all".
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, "02 Друга", m.sel.Story)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, "", m.sel.Story)
	assert.Len(t, m.result.Rows, 3)
}

func TestBrowseFirstOnlyRequiresStory(t *testing.T) {
	m := NewBrowseModel()
	m.SetCorpus(loadBrowseCorpus(t), corpus.StorySortName, 0)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	assert.True(t, m.sel.FirstOnly)
	require.Len(t, m.result.Rows, 2)

	// Dropping the story filter clears first-only so every word shows.
	m.SelectStory("")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	assert.False(t, m.sel.FirstOnly)
	assert.Len(t, m.result.Rows, 3)
}

func TestBrowseLiveFilter(t *testing.T) {
	m := NewBrowseModel()
	m.SetCorpus(loadBrowseCorpus(t), corpus.StorySortName, 0)
	m.SelectStory("")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.True(t, m.Filtering())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'х'}})
	require.Len(t, m.result.Rows, 1)
	assert.Equal(t, "хата", m.result.Rows[0].Lemma)

	// Esc cancels the filter and restores the full table.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Filtering())
	assert.Len(t, m.result.Rows, 3)
}
