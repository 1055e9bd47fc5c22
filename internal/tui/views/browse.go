// Package views provides the individual views for the kazky TUI.
package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/odarka/kazky/internal/clipboard"
	"github.com/odarka/kazky/internal/corpus"
)

// Browse view styles
var (
	browseSummaryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc"))

	browseStoryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ecdc4")).
				Bold(true)

	browseStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 1)

	browseTruncStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffe66d")).
				Italic(true)

	browseSearchBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#ffe66d")).
				Padding(0, 1)

	browseNoMatchStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				Padding(1, 2)

	browseCopiedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8e6cf")).
				Bold(true)

	browseNoDataStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				Align(lipgloss.Center)
)

// BrowseModel is the vocabulary table view.
type BrowseModel struct {
	corpus *corpus.Corpus

	// Story options in display order; index 0 means "all stories".
	storyChoices []string
	storyIdx     int

	sel    corpus.Selection
	rowCap int
	result corpus.Result

	table       table.Model
	filterInput textinput.Model
	filtering   bool

	copied string

	width  int
	height int
}

// NewBrowseModel creates a new browse view model.
func NewBrowseModel() BrowseModel {
	fi := textinput.New()
	fi.Placeholder = "Filter words..."
	fi.CharLimit = 50
	fi.Width = 30

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return BrowseModel{
		filterInput: fi,
		table:       t,
		sel: corpus.Selection{
			SortField:  corpus.SortFrequency,
			Descending: true,
		},
	}
}

// SetCorpus installs a freshly loaded corpus. The first story in the
// offered order starts out selected when there is one.
func (m *BrowseModel) SetCorpus(c *corpus.Corpus, storySort corpus.StorySort, rowCap int) {
	m.corpus = c
	m.rowCap = rowCap
	m.sel.Filter = ""
	m.sel.FirstOnly = false
	m.filterInput.SetValue("")
	m.filtering = false

	if c == nil {
		m.storyChoices = nil
		m.storyIdx = 0
		return
	}

	m.SetStoryOrder(storySort)
	if len(m.storyChoices) > 1 {
		m.storyIdx = 1
	} else {
		m.storyIdx = 0
	}
	m.sel.Story = m.currentStory()
	m.refresh()
}

// Filtering reports whether the filter input currently has focus.
func (m BrowseModel) Filtering() bool {
	return m.filtering
}

// SetStoryOrder reorders the story choices without touching the row
// query.
func (m *BrowseModel) SetStoryOrder(storySort corpus.StorySort) {
	if m.corpus == nil {
		return
	}
	m.storyChoices = append([]string{""}, m.corpus.SortedStories(storySort)...)
	m.syncStoryIdx()
}

// SelectStory jumps the story filter to a specific story.
func (m *BrowseModel) SelectStory(story string) {
	m.sel.Story = story
	m.sel.FirstOnly = false
	m.syncStoryIdx()
	m.refresh()
}

func (m *BrowseModel) syncStoryIdx() {
	m.storyIdx = 0
	for i, s := range m.storyChoices {
		if s == m.sel.Story {
			m.storyIdx = i
			break
		}
	}
}

func (m *BrowseModel) currentStory() string {
	if m.storyIdx <= 0 || m.storyIdx >= len(m.storyChoices) {
		return ""
	}
	return m.storyChoices[m.storyIdx]
}

// SetSize updates the view dimensions.
func (m *BrowseModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	tableHeight := height - 9
	if tableHeight < 5 {
		tableHeight = 5
	}
	m.table.SetHeight(tableHeight)
	if m.corpus != nil {
		m.refresh()
	}
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (BrowseModel, tea.Cmd) {
	if m.corpus == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.copied = ""

		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.filterInput.Blur()
				return m, nil
			case "esc":
				m.filtering = false
				m.filterInput.Blur()
				m.filterInput.SetValue("")
				m.sel.Filter = ""
				m.refresh()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filterInput, cmd = m.filterInput.Update(msg)
				// Live filtering on every keystroke.
				m.sel.Filter = m.filterInput.Value()
				m.refresh()
				return m, cmd
			}
		}

		switch msg.String() {
		case "/":
			m.filtering = true
			m.filterInput.Focus()
			return m, textinput.Blink
		case "c":
			m.filterInput.SetValue("")
			m.sel.Filter = ""
			m.refresh()
			return m, nil
		case "s":
			m.cycleStory(1)
			return m, nil
		case "S":
			m.cycleStory(-1)
			return m, nil
		case "f":
			// Only meaningful when a story is selected.
			if m.sel.Story != "" {
				m.sel.FirstOnly = !m.sel.FirstOnly
				m.refresh()
			}
			return m, nil
		case "o":
			if m.sel.SortField == corpus.SortFrequency {
				m.sel.SortField = corpus.SortAlphabetical
			} else {
				m.sel.SortField = corpus.SortFrequency
			}
			m.refresh()
			return m, nil
		case "r":
			m.sel.Descending = !m.sel.Descending
			m.refresh()
			return m, nil
		case "y":
			if row := m.selectedRecord(); row != nil && clipboard.Available() {
				if err := clipboard.Write(row.Lemma); err == nil {
					m.copied = row.Lemma
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *BrowseModel) cycleStory(step int) {
	if len(m.storyChoices) == 0 {
		return
	}
	m.storyIdx = (m.storyIdx + step + len(m.storyChoices)) % len(m.storyChoices)
	m.sel.Story = m.currentStory()
	if m.sel.Story == "" {
		m.sel.FirstOnly = false
	}
	m.refresh()
}

func (m *BrowseModel) selectedRecord() *corpus.Record {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.result.Rows) {
		return nil
	}
	return &m.result.Rows[i]
}

// refresh re-runs the query and rebuilds the table. Cheap enough to do
// on every keystroke.
func (m *BrowseModel) refresh() {
	sel := m.sel
	sel.Limit = m.rowCap
	m.result = corpus.Query(m.corpus.Records, sel)

	lemmaWidth := 24
	if m.width > 80 {
		lemmaWidth = m.width - 56
	}

	countTitle := "Total"
	if m.sel.Story != "" {
		countTitle = "Count"
	}

	columns := []table.Column{
		{Title: "Lemma", Width: lemmaWidth},
		{Title: countTitle, Width: 8},
		{Title: "First story", Width: 24},
	}
	if m.sel.Story != "" {
		columns = append(columns, table.Column{Title: "New?", Width: 5})
	}

	rows := make([]table.Row, len(m.result.Rows))
	for i, rec := range m.result.Rows {
		row := table.Row{
			rec.Lemma,
			strconv.Itoa(corpus.DisplayCount(rec, m.sel)),
			rec.FirstStory,
		}
		if m.sel.Story != "" {
			mark := ""
			if rec.FirstStory == m.sel.Story {
				mark = "✓"
			}
			row = append(row, mark)
		}
		rows[i] = row
	}

	// Reset rows before columns so the old cursor can't point past the
	// new row set.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View renders the browse view.
func (m BrowseModel) View() string {
	if m.corpus == nil {
		return renderNoCorpus()
	}

	var b strings.Builder

	b.WriteString(m.renderSummary())
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(browseSearchBoxStyle.Render("Filter: " + m.filterInput.View()))
		b.WriteString("\n")
	} else if m.sel.Filter != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Filter: %q (press 'c' to clear)", m.sel.Filter)))
		b.WriteString("\n")
	}

	if len(m.result.Rows) == 0 {
		b.WriteString(browseNoMatchStyle.Render("No matching words"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m BrowseModel) renderSummary() string {
	story := "all stories"
	if m.sel.Story != "" {
		story = m.sel.Story
	}

	parts := []string{
		browseSummaryStyle.Render("Story: ") + browseStoryStyle.Render(story),
		browseSummaryStyle.Render("Sort: ") + m.sel.SortField.String() + " " + direction(m.sel.Descending),
	}
	if m.sel.FirstOnly {
		parts = append(parts, browseStoryStyle.Render("first appearance only"))
	}
	if m.copied != "" {
		parts = append(parts, browseCopiedStyle.Render("copied "+m.copied))
	}

	return strings.Join(parts, browseSummaryStyle.Render("  •  "))
}

func (m BrowseModel) renderStatus() string {
	status := fmt.Sprintf("Showing %d of %d words", len(m.result.Rows), m.result.Total)
	if m.sel.Filter != "" || m.sel.Story != "" {
		status = fmt.Sprintf("Showing %d of %d matches (%d words total)",
			len(m.result.Rows), m.result.Matched, m.result.Total)
	}

	line := browseStatusStyle.Render(status)
	if m.result.Truncated() {
		line += " " + browseTruncStyle.Render(fmt.Sprintf("table capped at %d rows", len(m.result.Rows)))
	}
	return line
}

func (m BrowseModel) renderHelp() string {
	help := "↑/↓: rows • /: filter • s/S: story • o: sort • r: direction"
	if m.sel.Story != "" {
		help += " • f: first-only"
	}
	if clipboard.Available() {
		help += " • y: copy lemma"
	}
	return helpStyle.Render(help)
}

func direction(desc bool) string {
	if desc {
		return "↓"
	}
	return "↑"
}

func renderNoCorpus() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3d5a80")).
		Padding(2, 4).
		Align(lipgloss.Center)

	content := browseNoDataStyle.Render("No corpus loaded") + "\n\n" +
		helpStyle.Render("Press '4' or go to \"Open File\"\nto load a lemma_summary.csv")

	return "\n\n" + box.Render(content)
}

// Shared view styles
var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#666666"))
