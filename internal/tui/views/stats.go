package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/diary/internal/cli"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/tui/ui"
)

// maxVisibleMonths is how many of the most recent months the chart shows
const maxVisibleMonths = 12

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	result *service.StatsResult
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// statsLoadedMsg is sent when stats are computed
type statsLoadedMsg struct {
	result service.StatsResult
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadStats()
		}

	case ui.EntryAddedMsg:
		return m, m.loadStats()

	case statsLoadedMsg:
		m.result = &msg.result

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n")

	if m.result == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	st := m.result.Statistics
	if st.EntryCount == 0 {
		b.WriteString(m.styles.StatValue.Render(cli.EmptyGalleryTitle))
		b.WriteString("\n\n")
		b.WriteString(m.styles.FieldLabel.Render(cli.EmptyGalleryHint))
		return b.String()
	}

	b.WriteString(m.renderStatLine("Entries:", pluralize(st.EntryCount, "entry", "entries")))
	b.WriteString(m.renderStatLine("First entry:", st.FirstDay))
	b.WriteString(m.renderStatLine("Latest entry:", st.LastDay))
	b.WriteString(m.renderStatLine("Current streak:", cli.FormatStreak(st.CurrentStreak)))
	b.WriteString(m.renderStatLine("Longest streak:", cli.FormatStreak(st.LongestStreak)))

	if st.CurrentStreak > 0 && st.LastDay != m.result.Today {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("No entry yet today. Keep the streak going!"))
		b.WriteString("\n")
	}

	months := st.Months
	if len(months) == 0 {
		return b.String()
	}
	if len(months) > maxVisibleMonths {
		months = months[len(months)-maxVisibleMonths:]
	}

	limit := 0
	for _, mc := range months {
		limit = max(limit, mc.Count)
	}
	barWidth := max(10, min(40, m.width-24))

	b.WriteString("\n")
	b.WriteString(m.styles.ViewTitle.Render("Entries per month"))
	b.WriteString("\n")
	for _, mc := range months {
		b.WriteString(fmt.Sprintf("  %-8s %3d ", cli.FormatMonth(mc.Month), mc.Count))
		b.WriteString(m.styles.StatBar.Render(cli.FormatBar(mc.Count, limit, barWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to compute stats
func (m StatsModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		return statsLoadedMsg{result: m.services.Stats.Compute()}
	}
}

func (m StatsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}
