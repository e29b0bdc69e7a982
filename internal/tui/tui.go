// Package tui provides the Terminal User Interface for the diary application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/tui/ui"
	"github.com/xolan/diary/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabGallery Tab = iota
	TabStats
	TabConfig
)

var tabNames = []string{"Gallery", "Stats", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	err       error

	// View models
	galleryView views.GalleryModel
	statsView   views.StatsModel
	configView  views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// themeSavedMsg reports the result of persisting a theme choice
type themeSavedMsg struct {
	err error
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabGallery,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		galleryView:   views.NewGalleryModel(services, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.galleryView.Init(),
		m.statsView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The add form owns every key except ctrl+c
		if m.isCapturingKeys() {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

		case key.Matches(msg, m.keys.PrevTab):
			return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

		case key.Matches(msg, m.keys.Tab1):
			return m.switchTab(TabGallery)

		case key.Matches(msg, m.keys.Tab2):
			return m.switchTab(TabStats)

		case key.Matches(msg, m.keys.Tab3):
			return m.switchTab(TabConfig)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// tabs and status bar
		contentHeight := m.height - 4
		m.galleryView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: m.themeProvider.CurrentName(),
			Styles:    m.styles,
		}
		m.galleryView, _ = m.galleryView.Update(themeMsg)
		m.statsView, _ = m.statsView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(themeMsg.ThemeName)

	case themeSavedMsg:
		m.err = msg.err
		return m, nil
	}

	// Keys go to the active view only; results of background loads go to every view
	if _, isKey := msg.(tea.KeyMsg); isKey {
		switch m.activeTab {
		case TabGallery:
			m.galleryView, cmd = m.galleryView.Update(msg)
		case TabStats:
			m.statsView, cmd = m.statsView.Update(msg)
		case TabConfig:
			m.configView, cmd = m.configView.Update(msg)
		}
		return m, cmd
	}

	var galleryCmd, statsCmd, configCmd tea.Cmd
	m.galleryView, galleryCmd = m.galleryView.Update(msg)
	m.statsView, statsCmd = m.statsView.Update(msg)
	m.configView, configCmd = m.configView.Update(msg)
	return m, tea.Batch(galleryCmd, statsCmd, configCmd)
}

func (m Model) switchTab(t Tab) (Model, tea.Cmd) {
	m.activeTab = t
	return m, m.initCurrentView()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabGallery:
		b.WriteString(m.galleryView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the context-sensitive key hints
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts,
			m.renderKeyHelp("tab", "next field"),
			m.renderKeyHelp("ctrl+s", "save"),
			m.renderKeyHelp("esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabGallery:
			parts = append(parts,
				m.renderKeyHelp("n", "new"),
				m.renderKeyHelp("enter", "open"),
				m.renderKeyHelp("r", "refresh"))
		case TabStats:
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts,
			m.renderKeyHelp("1-3", "views"),
			m.renderKeyHelp("?", "help"),
			m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isCapturingKeys reports whether the active view takes raw keyboard input
func (m Model) isCapturingKeys() bool {
	return m.activeTab == TabGallery && m.galleryView.IsInputMode()
}

// initCurrentView reloads the view that was switched to
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabGallery:
		return m.galleryView.Init()
	case TabStats:
		return m.statsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig writes the chosen theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		return themeSavedMsg{err: m.services.Config.Update(cfg)}
	}
}

// renderHelpOverlay renders the keyboard shortcuts for the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabGallery:
		help.WriteString(m.styles.StatLabel.Render("Gallery:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  g          Jump to newest\n")
		help.WriteString("  Enter      Open entry\n")
		help.WriteString("  n          New entry\n")
		help.WriteString("  r          Refresh\n")
		help.WriteString("\n")
		help.WriteString(m.styles.StatLabel.Render("New entry:"))
		help.WriteString("\n")
		help.WriteString("  Tab        Next field\n")
		help.WriteString("  Ctrl+S     Save\n")
		help.WriteString("  Esc        Cancel\n")
	case TabStats:
		help.WriteString(m.styles.StatLabel.Render("Stats:"))
		help.WriteString("\n")
		help.WriteString("  r          Refresh\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI and forwards entry store notifications to it until it exits
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())

	unsubscribe := services.Entry.Subscribe(func(e entry.Entry) {
		p.Send(ui.EntryAddedMsg{Entry: e})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}
