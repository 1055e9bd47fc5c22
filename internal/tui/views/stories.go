package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/odarka/kazky/internal/corpus"
)

// StorySelectedMsg is sent when the user picks a story to browse.
type StorySelectedMsg struct {
	Story string
}

// Stories view styles
var (
	storiesHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	storiesRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	storiesSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436"))

	storiesSortStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ecdc4"))

	storiesAllStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// StoriesModel lists the corpus stories with their aggregates.
type StoriesModel struct {
	corpus  *corpus.Corpus
	stories []string
	sortBy  corpus.StorySort

	selected int
	offset   int

	width  int
	height int
}

// NewStoriesModel creates a new stories view model.
func NewStoriesModel(sortBy corpus.StorySort) StoriesModel {
	return StoriesModel{sortBy: sortBy}
}

// SetCorpus installs a freshly loaded corpus.
func (m *StoriesModel) SetCorpus(c *corpus.Corpus) {
	m.corpus = c
	m.selected = 0
	m.offset = 0
	m.reorder()
}

// SortBy returns the current story ordering.
func (m *StoriesModel) SortBy() corpus.StorySort {
	return m.sortBy
}

// SetSize updates the view dimensions.
func (m *StoriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *StoriesModel) reorder() {
	if m.corpus == nil {
		m.stories = nil
		return
	}
	m.stories = m.corpus.SortedStories(m.sortBy)
}

func (m *StoriesModel) visibleHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

func (m *StoriesModel) adjustScroll() {
	visible := m.visibleHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
}

// Update handles messages.
func (m StoriesModel) Update(msg tea.Msg) (StoriesModel, tea.Cmd) {
	if m.corpus == nil {
		return m, nil
	}

	// Row 0 is "all stories", rows 1..n the individual stories.
	total := len(m.stories) + 1

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selected < total-1 {
				m.selected++
				m.adjustScroll()
			}
			return m, nil
		case "k", "up":
			if m.selected > 0 {
				m.selected--
				m.adjustScroll()
			}
			return m, nil
		case "g":
			m.selected = 0
			m.offset = 0
			return m, nil
		case "G":
			m.selected = total - 1
			m.adjustScroll()
			return m, nil
		case "o":
			m.sortBy = (m.sortBy + 1) % 3
			m.reorder()
			return m, nil
		case "enter", "l", "right":
			story := ""
			if m.selected > 0 && m.selected-1 < len(m.stories) {
				story = m.stories[m.selected-1]
			}
			return m, func() tea.Msg {
				return StorySelectedMsg{Story: story}
			}
		}
	}

	return m, nil
}

// View renders the stories view.
func (m StoriesModel) View() string {
	if m.corpus == nil {
		return renderNoCorpus()
	}

	var b strings.Builder

	b.WriteString(storiesSortStyle.Render(fmt.Sprintf("Sorted by %s (press 'o' to change)", m.sortBy)))
	b.WriteString("\n\n")

	nameWidth := 40
	if m.width > 70 {
		nameWidth = m.width - 30
	}

	header := fmt.Sprintf("  %s %10s %10s",
		padRight("Story", nameWidth), "Words", "New words")
	b.WriteString(storiesHeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#3d5a80")).
		Render(strings.Repeat("─", min(m.width-4, nameWidth+24))))
	b.WriteString("\n")

	visible := m.visibleHeight()
	end := m.offset + visible
	total := len(m.stories) + 1
	if end > total {
		end = total
	}

	for i := m.offset; i < end; i++ {
		var line string
		if i == 0 {
			line = fmt.Sprintf("%s %10d %10s",
				padRight("(all stories)", nameWidth), m.totalOccurrences(), "")
			if i != m.selected {
				line = storiesAllStyle.Render(line)
			}
		} else {
			story := m.stories[i-1]
			st := m.corpus.Stat(story)
			line = fmt.Sprintf("%s %10d %10d",
				padRight(story, nameWidth), st.TotalWords, st.NewWords)
			if i != m.selected {
				line = storiesRowStyle.Render(line)
			}
		}

		prefix := "  "
		if i == m.selected {
			prefix = "> "
			line = storiesSelectedStyle.Render(line)
		}
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: browse story • o: sort • j/k: move"))

	return b.String()
}

func (m StoriesModel) totalOccurrences() int {
	sum := 0
	for _, rec := range m.corpus.Records {
		sum += rec.TotalCount
	}
	return sum
}

// padRight pads or truncates a display string to a target cell width,
// counting wide runes correctly.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
