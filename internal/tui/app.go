package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/odarka/kazky/internal/config"
	"github.com/odarka/kazky/internal/corpus"
	"github.com/odarka/kazky/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewBrowse ViewType = iota
	ViewStories
	ViewLookup
	ViewFilePicker
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// CorpusLoadedMsg is sent when a lemma summary finishes loading.
type CorpusLoadedMsg struct {
	Corpus *corpus.Corpus
	Path   string
	Err    error
}

// AppModel is the main unified TUI model
type AppModel struct {
	config    *config.Config
	configDir string

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	browseView     views.BrowseModel
	storiesView    views.StoriesModel
	lookupView     views.LookupModel
	filePickerView views.FilePickerModel
	settingsView   views.SettingsModel

	// Loaded corpus
	corpus     *corpus.Corpus
	corpusPath string
	loading    bool
	loadErr    error

	// Help overlay
	showHelp bool
}

// NewApp creates a new unified TUI application. The corpus, if any,
// loads asynchronously on Init.
func NewApp(cfg *config.Config, configDir string) AppModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	menuItems := []MenuItem{
		{Label: "Browse", View: ViewBrowse, Shortcut: "1"},
		{Label: "Stories", View: ViewStories, Shortcut: "2"},
		{Label: "Lookup", View: ViewLookup, Shortcut: "3"},
		{Label: "Open File", View: ViewFilePicker, Shortcut: "4"},
		{Label: "Settings", View: ViewSettings, Shortcut: "5"},
	}

	return AppModel{
		config:       cfg,
		configDir:    configDir,
		sidebarWidth: 18,
		currentView:  ViewBrowse,
		menuItems:    menuItems,
		loading:      cfg.CorpusPath != "",

		browseView:     views.NewBrowseModel(),
		storiesView:    views.NewStoriesModel(corpus.ParseStorySort(cfg.StorySort)),
		lookupView:     views.NewLookupModel(),
		filePickerView: views.NewFilePickerModel(),
		settingsView:   views.NewSettingsModel(cfg, configDir),
	}
}

// NewAppWithCorpus creates a new app with a pre-loaded corpus.
func NewAppWithCorpus(cfg *config.Config, configDir string, c *corpus.Corpus, path string) AppModel {
	app := NewApp(cfg, configDir)
	app.installCorpus(c, path)
	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.corpus == nil && m.config.CorpusPath != "" {
		cmds = append(cmds, m.loadCorpus(m.config.CorpusPath))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys. "q" stays usable because no view takes free-form
		// text without focus.
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.typing() {
				return m, tea.Quit
			}
		case "?":
			if !m.typing() {
				m.showHelp = true
				return m, nil
			}
		case "esc":
			if m.typing() {
				break
			}
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "1", "2", "3", "4", "5":
			if !m.typing() {
				idx := int(msg.String()[0] - '1')
				m.currentView = m.menuItems[idx].View
				m.selectedMenu = idx
				m.sidebarActive = false
				return m, nil
			}
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				m.currentView = m.menuItems[m.selectedMenu].View
				m.sidebarActive = false
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.browseView.SetSize(contentWidth, contentHeight)
		m.storiesView.SetSize(contentWidth, contentHeight)
		m.lookupView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case views.FileSelectedMsg:
		m.loading = true
		m.loadErr = nil
		return m, m.loadCorpus(msg.Path)

	case views.StorySelectedMsg:
		m.browseView.SetStoryOrder(m.storiesView.SortBy())
		m.browseView.SelectStory(msg.Story)
		m.currentView = ViewBrowse
		m.selectedMenu = 0
		return m, nil

	case CorpusLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.loadErr = msg.Err
			return m, nil
		}
		m.loadErr = nil
		m.installCorpus(msg.Corpus, msg.Path)
		m.currentView = ViewBrowse
		m.selectedMenu = 0
		return m, nil
	}

	// Delegate to active view if not in sidebar mode
	if !m.sidebarActive {
		var cmd tea.Cmd
		switch m.currentView {
		case ViewBrowse:
			m.browseView, cmd = m.browseView.Update(msg)
		case ViewStories:
			m.storiesView, cmd = m.storiesView.Update(msg)
		case ViewLookup:
			m.lookupView, cmd = m.lookupView.Update(msg)
		case ViewFilePicker:
			m.filePickerView, cmd = m.filePickerView.Update(msg)
		case ViewSettings:
			m.settingsView, cmd = m.settingsView.Update(msg)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// typing reports whether the focused view is consuming free-form text,
// which disables single-letter global shortcuts.
func (m AppModel) typing() bool {
	if m.sidebarActive {
		return false
	}
	switch m.currentView {
	case ViewLookup:
		return true
	case ViewBrowse:
		return m.browseView.Filtering()
	}
	return false
}

func (m *AppModel) installCorpus(c *corpus.Corpus, path string) {
	m.corpus = c
	m.corpusPath = path
	m.loading = false

	storySort := corpus.ParseStorySort(m.config.StorySort)
	m.browseView.SetCorpus(c, storySort, m.config.RowCap)
	m.storiesView.SetCorpus(c)
	m.lookupView.SetCorpus(c)
	m.settingsView.SetCorpus(c, path)
}

// loadCorpus loads a lemma summary asynchronously.
func (m AppModel) loadCorpus(path string) tea.Cmd {
	clean := m.config.CleanNames
	return func() tea.Msg {
		c, err := corpus.Load(path)
		if err == nil && clean {
			c.CleanNames()
		}
		return CorpusLoadedMsg{Corpus: c, Path: path, Err: err}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch {
	case m.loading:
		content = LoadingStyle.Render("Loading corpus...")
	case m.loadErr != nil && m.dataView():
		content = m.renderLoadError()
	default:
		switch m.currentView {
		case ViewBrowse:
			content = m.browseView.View()
		case ViewStories:
			content = m.storiesView.View()
		case ViewLookup:
			content = m.lookupView.View()
		case ViewFilePicker:
			content = m.filePickerView.View()
		case ViewSettings:
			content = m.settingsView.View()
		}
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// dataView reports whether the active view depends on corpus data. A
// failed load replaces those views entirely; the picker and settings
// stay reachable so the user can recover.
func (m AppModel) dataView() bool {
	switch m.currentView {
	case ViewBrowse, ViewStories, ViewLookup:
		return true
	}
	return false
}

func (m AppModel) renderLoadError() string {
	msg := ErrorStyle.Render("Could not load the corpus") + "\n\n" +
		m.loadErr.Error() + "\n\n" +
		HelpStyle.Render("Fix the file or pick another one ('4')")
	return ErrorBoxStyle.Render(msg)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	title := SidebarTitleStyle.Render("  КАЗКИ  ")
	items = append(items, title)
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	help := SidebarHelpStyle.Render("? Help  q Quit")
	items = append(items, help)

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := titleStyle.Render("kazky - lemma frequency browser") + "\n\n"

	helpText += sectionStyle.Render("Global Keys") + "\n"
	helpText += keyStyle.Render("1-5") + descStyle.Render("Switch views") + "\n"
	helpText += keyStyle.Render("tab") + descStyle.Render("Toggle sidebar focus") + "\n"
	helpText += keyStyle.Render("?") + descStyle.Render("Show this help") + "\n"
	helpText += keyStyle.Render("q") + descStyle.Render("Quit") + "\n"

	helpText += sectionStyle.Render("Browse View") + "\n"
	helpText += keyStyle.Render("j/k ↑/↓") + descStyle.Render("Move through rows") + "\n"
	helpText += keyStyle.Render("/") + descStyle.Render("Filter words") + "\n"
	helpText += keyStyle.Render("s/S") + descStyle.Render("Next/previous story") + "\n"
	helpText += keyStyle.Render("f") + descStyle.Render("First-appearance only") + "\n"
	helpText += keyStyle.Render("o") + descStyle.Render("Frequency/alphabetical") + "\n"
	helpText += keyStyle.Render("r") + descStyle.Render("Flip sort direction") + "\n"

	helpText += sectionStyle.Render("Stories View") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Browse selected story") + "\n"
	helpText += keyStyle.Render("o") + descStyle.Render("Sort by name/words/new") + "\n"

	helpText += sectionStyle.Render("Lookup View") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Look up a word") + "\n"

	helpText += sectionStyle.Render("File Picker") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Select file/enter dir") + "\n"
	helpText += keyStyle.Render("backspace") + descStyle.Render("Go to parent dir") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2).
		Width(50)

	helpBox := boxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
