package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/odarka/kazky/internal/clipboard"
	"github.com/odarka/kazky/internal/corpus"
)

// Lookup view styles
var (
	lookupLemmaStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(1, 4).
				Margin(1, 0)

	lookupLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc")).
				Bold(true).
				Width(14)

	lookupValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	lookupNewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	lookupBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	lookupBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2)

	lookupNotFoundStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true)

	lookupCopiedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8e6cf")).
				Bold(true)
)

type lookupClearCopiedMsg struct{}

func lookupClearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return lookupClearCopiedMsg{}
	})
}

// LookupModel shows the full per-story profile of a single lemma.
type LookupModel struct {
	corpus *corpus.Corpus

	input    textinput.Model
	record   *corpus.Record
	searched string

	copied bool

	width  int
	height int
}

// NewLookupModel creates a new lookup view model.
func NewLookupModel() LookupModel {
	ti := textinput.New()
	ti.Placeholder = "Type a word, e.g. кіт"
	ti.CharLimit = 50
	ti.Width = 30
	ti.Focus()

	return LookupModel{input: ti}
}

// SetCorpus installs a freshly loaded corpus.
func (m *LookupModel) SetCorpus(c *corpus.Corpus) {
	m.corpus = c
	m.record = nil
	m.searched = ""
	m.input.SetValue("")
}

// SetSize updates the view dimensions.
func (m *LookupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m LookupModel) Update(msg tea.Msg) (LookupModel, tea.Cmd) {
	if m.corpus == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.searched = strings.TrimSpace(m.input.Value())
			m.record = m.find(m.searched)
			m.copied = false
			return m, nil
		case "ctrl+y":
			if m.record != nil && clipboard.Available() {
				if err := clipboard.Write(m.summary()); err == nil {
					m.copied = true
					return m, lookupClearCopiedAfter(2 * time.Second)
				}
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case lookupClearCopiedMsg:
		m.copied = false
		return m, nil
	}

	return m, nil
}

// find looks up a lemma, exact match first, then case-insensitive.
func (m *LookupModel) find(lemma string) *corpus.Record {
	if lemma == "" {
		return nil
	}
	for i := range m.corpus.Records {
		if m.corpus.Records[i].Lemma == lemma {
			return &m.corpus.Records[i]
		}
	}
	lower := strings.ToLower(lemma)
	for i := range m.corpus.Records {
		if strings.ToLower(m.corpus.Records[i].Lemma) == lower {
			return &m.corpus.Records[i]
		}
	}
	return nil
}

// summary is the plain-text rendition used for the clipboard.
func (m *LookupModel) summary() string {
	r := m.record
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %d occurrences, first in %s\n", r.Lemma, r.TotalCount, r.FirstStory)
	for _, story := range m.corpus.Stories {
		if n := r.CountIn(story); n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", story, n)
		}
	}
	return b.String()
}

// View renders the lookup view.
func (m LookupModel) View() string {
	if m.corpus == nil {
		return renderNoCorpus()
	}

	var b strings.Builder

	b.WriteString(browseSearchBoxStyle.Render("Lookup: " + m.input.View()))
	b.WriteString("\n")

	switch {
	case m.record != nil:
		b.WriteString(m.renderRecord())
	case m.searched != "":
		b.WriteString("\n")
		b.WriteString(lookupNotFoundStyle.Render(fmt.Sprintf("%q is not in the corpus", m.searched)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "enter: look up"
	if m.record != nil && clipboard.Available() {
		help += " • ctrl+y: copy summary"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m LookupModel) renderRecord() string {
	r := m.record
	var b strings.Builder

	header := lookupLemmaStyle.Render(r.Lemma)
	if m.copied {
		header += "  " + lookupCopiedStyle.Render("✓ Copied!")
	}
	b.WriteString(header)
	b.WriteString("\n")

	var lines []string
	lines = append(lines, lookupLabelStyle.Render("Total:")+lookupValueStyle.Render(fmt.Sprintf("%d", r.TotalCount)))
	lines = append(lines, lookupLabelStyle.Render("First story:")+lookupNewStyle.Render(r.FirstStory))
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")

	b.WriteString(m.renderCounts(r))
	return b.String()
}

// renderCounts draws one bar line per story the lemma appears in, in
// corpus order.
func (m LookupModel) renderCounts(r *corpus.Record) string {
	maxCount := 0
	for _, story := range m.corpus.Stories {
		if n := r.CountIn(story); n > maxCount {
			maxCount = n
		}
	}
	if maxCount == 0 {
		return lookupNotFoundStyle.Render("No per-story counts recorded")
	}

	barWidth := 20
	var lines []string
	for _, story := range m.corpus.Stories {
		n := r.CountIn(story)
		if n == 0 {
			continue
		}
		bar := strings.Repeat("█", 1+n*(barWidth-1)/maxCount)
		marker := " "
		if story == r.FirstStory {
			marker = lookupNewStyle.Render("★")
		}
		lines = append(lines, fmt.Sprintf("%s %s %s %d",
			marker,
			lookupValueStyle.Render(padRight(story, 28)),
			lookupBarStyle.Render(bar),
			n,
		))
	}

	return lookupBoxStyle.Render(strings.Join(lines, "\n"))
}
