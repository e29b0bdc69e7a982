package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/diary/internal/config"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// ConfigModel shows the active configuration and lets the user pick a theme
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	// UI state
	width   int
	height  int
	config  config.Config
	path    string
	exists  bool
	backend string

	// Theme selector state
	selecting bool
	themes    []string
	cursor    int
	offset    int
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	return ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themes:        themeProvider.AvailableThemes(),
		cursor:        themeProvider.IndexOf(themeProvider.CurrentName()),
	}
}

// configLoadedMsg is sent when config is loaded
type configLoadedMsg struct {
	config  config.Config
	path    string
	exists  bool
	backend string
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selecting {
			return m.handleThemeSelection(msg)
		}
		if key.Matches(msg, m.keys.Select) || msg.String() == "t" {
			m.selecting = true
			m.cursor = m.themeProvider.IndexOf(m.themeProvider.CurrentName())
			m.scrollToCursor()
		}
		return m, nil

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists
		m.backend = msg.backend

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.config.Theme = msg.ThemeName
	}

	return m, nil
}

// handleThemeSelection handles keys when the theme selector is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.scrollToCursor()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.themes)-1 {
			m.cursor++
			m.scrollToCursor()
		}
	case key.Matches(msg, m.keys.Select):
		m.selecting = false
		if len(m.themes) == 0 {
			return m, nil
		}
		name := m.themes[m.cursor]
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: name}
		}
	case key.Matches(msg, m.keys.Back):
		m.selecting = false
	}
	return m, nil
}

func (m *ConfigModel) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+maxVisibleThemes {
		m.offset = m.cursor - maxVisibleThemes + 1
	}
}

// IsSelecting reports whether the theme selector is open
func (m ConfigModel) IsSelecting() bool {
	return m.selecting
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n")

	b.WriteString(m.renderConfigLine("Config file", m.path))
	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (run 'diary config init')"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderConfigLine("storage_backend", m.backend))
	b.WriteString(m.renderConfigLine("data_dir", orDefault(m.config.DataDir, "(config directory)")))
	b.WriteString(m.renderConfigLine("log_level", m.config.LogLevel))
	b.WriteString(m.renderConfigLine("timezone", m.config.Timezone))

	if m.selecting {
		b.WriteString("\n")
		b.WriteString(m.renderThemeSelector())
		return b.String()
	}

	b.WriteString(m.renderConfigLine("theme", m.themeProvider.CurrentName()))
	b.WriteString("\n")
	b.WriteString(m.styles.FieldLabel.Render("Press Enter or 't' to change theme"))
	return b.String()
}

// renderThemeSelector renders the scrolling theme list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder
	current := m.themeProvider.CurrentName()

	end := min(len(m.themes), m.offset+maxVisibleThemes)
	if m.offset > 0 {
		b.WriteString(m.styles.FieldLabel.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}
	for i := m.offset; i < end; i++ {
		name := m.themes[i]
		if name == current {
			name += " (current)"
		}
		if i == m.cursor {
			b.WriteString(m.styles.EntrySelected.Render("▸ " + name))
		} else {
			b.WriteString("  " + m.styles.StatValue.Render(name))
		}
		b.WriteString("\n")
	}
	if end < len(m.themes) {
		b.WriteString(m.styles.FieldLabel.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FieldLabel.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadConfig creates a command to load config
func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		return configLoadedMsg{
			config:  m.services.Config.Get(),
			path:    m.services.Config.GetPath(),
			exists:  m.services.Config.Exists(),
			backend: m.services.Storage.Backend(),
		}
	}
}

func (m ConfigModel) renderConfigLine(key, value string) string {
	return m.styles.StatLabel.Render(key+":") + " " + m.styles.StatValue.Render(value) + "\n"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
