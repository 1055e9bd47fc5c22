package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/odarka/kazky/internal/config"
	"github.com/odarka/kazky/internal/corpus"
)

// Settings view styles
var (
	settingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B")).
				MarginBottom(1)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 2)

	settingsTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	settingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	settingsRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))
)

// SettingsModel shows the active configuration and corpus summary.
type SettingsModel struct {
	config    *config.Config
	configDir string

	corpus     *corpus.Corpus
	corpusPath string

	// Tabs: 0=Config, 1=Corpus
	tab int

	width  int
	height int
}

// NewSettingsModel creates a new settings view model.
func NewSettingsModel(cfg *config.Config, configDir string) SettingsModel {
	return SettingsModel{config: cfg, configDir: configDir}
}

// SetCorpus installs a freshly loaded corpus and where it came from.
func (m *SettingsModel) SetCorpus(c *corpus.Corpus, path string) {
	m.corpus = c
	m.corpusPath = path
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l":
			m.tab = 1 - m.tab
			return m, nil
		}
	}
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(settingsTitleStyle.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(settingsPathStyle.Render(m.configDir))
	b.WriteString("\n")

	tabs := []string{"Config", "Corpus"}
	var rendered []string
	for i, t := range tabs {
		if i == m.tab {
			rendered = append(rendered, settingsTabActiveStyle.Render(t))
		} else {
			rendered = append(rendered, settingsTabStyle.Render(t))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n\n")

	if m.tab == 0 {
		b.WriteString(m.renderConfig())
	} else {
		b.WriteString(m.renderCorpus())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→: switch tab"))

	return b.String()
}

func (m SettingsModel) renderConfig() string {
	if m.config == nil {
		return settingsMutedStyle.Render("No configuration loaded")
	}

	rowCap := fmt.Sprintf("%d", m.config.RowCap)
	if m.config.RowCap == 0 {
		rowCap = fmt.Sprintf("%d (default)", corpus.DefaultCap)
	}

	rows := []string{
		settingsHeaderStyle.Render("corpus_path  ") + settingsRowStyle.Render(m.config.CorpusPath),
		settingsHeaderStyle.Render("row_cap      ") + settingsRowStyle.Render(rowCap),
		settingsHeaderStyle.Render("story_sort   ") + settingsRowStyle.Render(m.config.StorySort),
		settingsHeaderStyle.Render("clean_names  ") + settingsRowStyle.Render(fmt.Sprintf("%v", m.config.CleanNames)),
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m SettingsModel) renderCorpus() string {
	if m.corpus == nil {
		return settingsMutedStyle.Render("No corpus loaded")
	}

	rows := []string{
		settingsHeaderStyle.Render("source   ") + settingsRowStyle.Render(m.corpusPath),
		settingsHeaderStyle.Render("lemmas   ") + settingsRowStyle.Render(fmt.Sprintf("%d", len(m.corpus.Records))),
		settingsHeaderStyle.Render("stories  ") + settingsRowStyle.Render(fmt.Sprintf("%d", len(m.corpus.Stories))),
	}
	if s := m.corpus.DefaultStory(); s != "" {
		rows = append(rows, settingsHeaderStyle.Render("first    ")+settingsRowStyle.Render(s))
	}
	return strings.Join(rows, "\n") + "\n"
}
