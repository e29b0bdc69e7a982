package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/xolan/diary/internal/config"
	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/storage"
	"github.com/xolan/diary/internal/tui/ui"
)

var testNow = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.StorageBackend = config.BackendMemory

	n := 0
	s, err := service.NewServicesWithAdapter(storage.NewMemoryAdapter(), filepath.Join(t.TempDir(), config.ConfigFile), cfg, service.Options{
		Logger: zerolog.Nop(),
		Clock:  func() time.Time { return testNow },
		IDs: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	})
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}
	return s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew(t *testing.T) {
	model := New(setupTestServices(t))

	if model.activeTab != TabGallery {
		t.Errorf("expected initial tab to be Gallery, got %d", model.activeTab)
	}
	if model.services == nil {
		t.Error("expected services to be set")
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
	if model.themeProvider.CurrentName() != "dracula" {
		t.Errorf("expected configured theme, got %q", model.themeProvider.CurrentName())
	}
}

func TestInit(t *testing.T) {
	if New(setupTestServices(t)).Init() == nil {
		t.Error("expected Init to return a command")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := update(t, New(setupTestServices(t)), tea.WindowSizeMsg{Width: 100, Height: 50})

	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	_, cmd := update(t, New(setupTestServices(t)), runes("q"))
	if !isQuit(cmd) {
		t.Error("expected quit command")
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	m, _ := update(t, New(setupTestServices(t)), runes("?"))
	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	m, _ = update(t, m, runes("?"))
	if m.showHelp {
		t.Error("expected showHelp to be false after pressing ? again")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	m := New(setupTestServices(t))

	for _, want := range []Tab{TabStats, TabConfig, TabGallery} {
		var cmd tea.Cmd
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.activeTab != want {
			t.Errorf("expected tab %d, got %d", want, m.activeTab)
		}
		if cmd == nil {
			t.Error("switching tabs should reload the view")
		}
	}
}

func TestUpdate_PrevTab_Wraparound(t *testing.T) {
	m, _ := update(t, New(setupTestServices(t)), tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activeTab != TabConfig {
		t.Errorf("expected wrap to Config, got %d", m.activeTab)
	}
}

func TestUpdate_DirectTabKeys(t *testing.T) {
	tests := []struct {
		key      string
		expected Tab
	}{
		{"2", TabStats},
		{"3", TabConfig},
		{"1", TabGallery},
	}

	m := New(setupTestServices(t))
	for _, tt := range tests {
		m, _ = update(t, m, runes(tt.key))
		if m.activeTab != tt.expected {
			t.Errorf("key %s: expected tab %d, got %d", tt.key, tt.expected, m.activeTab)
		}
	}
}

func TestUpdate_AddFormCapturesKeys(t *testing.T) {
	m := New(setupTestServices(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	m, _ = update(t, m, runes("n"))

	if !m.isCapturingKeys() {
		t.Fatal("expected the add form to capture keys")
	}

	for _, k := range []tea.KeyMsg{runes("q"), runes("2"), runes("?"), {Type: tea.KeyTab}} {
		m, _ = update(t, m, k)
		if m.activeTab != TabGallery {
			t.Errorf("key %q switched tabs while typing", k.String())
		}
		if m.showHelp {
			t.Errorf("key %q opened help while typing", k.String())
		}
		if !m.isCapturingKeys() {
			t.Errorf("key %q left the add form", k.String())
		}
	}

	view := m.View()
	if !strings.Contains(view, "ctrl+s") || !strings.Contains(view, "save") {
		t.Errorf("expected form hints in status bar, got:\n%s", view)
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should always quit")
	}
}

func TestUpdate_EntryAddedRefreshesViews(t *testing.T) {
	s := setupTestServices(t)
	m := New(s)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})

	// Stats is not the active tab but must refresh as well
	e, err := s.Entry.Add(entry.Candidate{Title: "Gym", Date: "2024-01-10", ImageURL: "https://img", Content: "Leg day"})
	if err != nil {
		t.Fatal(err)
	}
	_, cmd := update(t, m, ui.EntryAddedMsg{Entry: e})
	if cmd == nil {
		t.Fatal("expected refresh commands")
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch of refreshes, got %T", cmd())
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		m, _ = update(t, m, c())
	}

	if !strings.Contains(m.View(), "Gym") {
		t.Errorf("gallery should show the new entry, got:\n%s", m.View())
	}
	m, _ = update(t, m, runes("2"))
	if !strings.Contains(m.View(), "1 entry") {
		t.Errorf("stats should count the new entry, got:\n%s", m.View())
	}
}

func TestUpdate_ThemeChangeRequest(t *testing.T) {
	s := setupTestServices(t)
	m := New(s)

	m, cmd := update(t, m, ui.ThemeChangeRequestMsg{ThemeName: "nord"})
	if m.themeProvider.CurrentName() != "nord" {
		t.Errorf("expected theme nord, got %q", m.themeProvider.CurrentName())
	}
	if cmd == nil {
		t.Fatal("expected save command")
	}

	m, _ = update(t, m, cmd())
	if m.err != nil {
		t.Errorf("saving theme failed: %v", m.err)
	}
	if s.Config.Get().Theme != "nord" {
		t.Errorf("config theme = %q, expected nord", s.Config.Get().Theme)
	}
	if !s.Config.Exists() {
		t.Error("expected config file to be written")
	}
}

func TestView_Loading(t *testing.T) {
	if view := New(setupTestServices(t)).View(); view != "Loading..." {
		t.Errorf("expected loading view before the first resize, got %q", view)
	}
}

func TestView_WithSize(t *testing.T) {
	m := New(setupTestServices(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})

	view := m.View()
	for _, want := range tabNames {
		if !strings.Contains(view, want) {
			t.Errorf("expected tab %q in view", want)
		}
	}
	if !strings.Contains(view, "new") || !strings.Contains(view, "quit") {
		t.Errorf("expected gallery hints in status bar, got:\n%s", view)
	}
}

func TestView_HelpOverlay(t *testing.T) {
	tests := []struct {
		tab  string
		want string
	}{
		{"1", "New entry"},
		{"2", "Stats:"},
		{"3", "Open theme selector"},
	}

	for _, tt := range tests {
		m := New(setupTestServices(t))
		m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
		m, _ = update(t, m, runes(tt.tab))
		m, _ = update(t, m, runes("?"))

		view := m.View()
		if !strings.Contains(view, "Keyboard Shortcuts") {
			t.Errorf("tab %s: expected help title", tt.tab)
		}
		if !strings.Contains(view, tt.want) {
			t.Errorf("tab %s: expected %q in help, got:\n%s", tt.tab, tt.want, view)
		}
	}
}

func TestRenderKeyHelp(t *testing.T) {
	m := New(setupTestServices(t))

	out := m.renderKeyHelp("n", "new")
	if !strings.Contains(out, "n") || !strings.Contains(out, "new") {
		t.Errorf("renderKeyHelp() = %q", out)
	}
}

func TestInitCurrentView(t *testing.T) {
	m := New(setupTestServices(t))

	for _, tab := range []Tab{TabGallery, TabStats, TabConfig} {
		m.activeTab = tab
		if m.initCurrentView() == nil {
			t.Errorf("expected init command for tab %d", tab)
		}
	}
	m.activeTab = Tab(99)
	if m.initCurrentView() != nil {
		t.Error("expected nil command for unknown tab")
	}
}
