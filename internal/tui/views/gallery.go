package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/diary/internal/cli"
	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/tui/ui"
)

// galleryMode represents the current mode of the gallery view
type galleryMode int

const (
	galleryModeList galleryMode = iota
	galleryModeDetail
	galleryModeAdd
)

// Add form fields, in focus order
const (
	fieldTitle = iota
	fieldDate
	fieldImage
	fieldContent
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Date", "Image URL", "Content"}

var fieldNames = [fieldCount]string{entry.FieldTitle, entry.FieldDate, entry.FieldImageURL, entry.FieldContent}

// GalleryModel is the model for the gallery view
type GalleryModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	offset  int
	entries []service.IndexedEntry
	loaded  bool
	status  string

	// selectDate moves the cursor to this day on the next load
	selectDate string

	// Add form state
	mode    galleryMode
	inputs  [fieldContent]textinput.Model
	content textarea.Model
	focused int
	formErr string
	invalid map[string]bool
	saving  bool
}

// NewGalleryModel creates a new gallery view model
func NewGalleryModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) GalleryModel {
	var inputs [fieldContent]textinput.Model

	inputs[fieldTitle] = textinput.New()
	inputs[fieldTitle].Placeholder = "What happened today?"
	inputs[fieldTitle].Width = 50

	inputs[fieldDate] = textinput.New()
	inputs[fieldDate].Placeholder = "YYYY-MM-DD, today or yesterday"
	inputs[fieldDate].Width = 20

	inputs[fieldImage] = textinput.New()
	inputs[fieldImage].Placeholder = "https://..."
	inputs[fieldImage].Width = 50

	content := textarea.New()
	content.Placeholder = "Write your entry..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetWidth(60)
	content.SetHeight(8)

	return GalleryModel{
		services: services,
		styles:   styles,
		keys:     keys,
		inputs:   inputs,
		content:  content,
	}
}

// galleryLoadedMsg is sent when the gallery is (re)loaded from the store
type galleryLoadedMsg struct {
	entries []service.IndexedEntry
}

// entrySavedMsg is the result of submitting the add form
type entrySavedMsg struct {
	entry entry.Entry
	err   error
}

// Init implements tea.Model
func (m GalleryModel) Init() tea.Cmd {
	return m.loadEntries()
}

// Update implements tea.Model
func (m GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case galleryModeAdd:
			return m.handleFormKeys(msg)
		case galleryModeDetail:
			return m.handleDetailKeys(msg)
		}
		return m.handleListKeys(msg)

	case galleryLoadedMsg:
		m.loaded = true
		m.entries = msg.entries
		if m.selectDate != "" {
			for i, ie := range m.entries {
				if ie.Entry.Date == m.selectDate {
					m.cursor = i
					break
				}
			}
			m.selectDate = ""
		}
		if m.cursor >= len(m.entries) {
			m.cursor = max(0, len(m.entries)-1)
		}
		m.scrollToCursor()
		return m, nil

	case ui.EntryAddedMsg:
		m.selectDate = msg.Entry.Date
		return m, m.loadEntries()

	case entrySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.formErr = cli.UserMessage(msg.err)
			m.invalid = invalidFields(msg.err)
			return m, nil
		}
		m.closeForm()
		m.status = fmt.Sprintf("Added: %s  %s", msg.entry.Date, msg.entry.Title)
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	// Cursor blink and other messages go to the focused input
	if m.mode == galleryModeAdd {
		return m.updateFocused(msg)
	}
	return m, nil
}

func (m GalleryModel) handleListKeys(msg tea.KeyMsg) (GalleryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.scrollToCursor()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.scrollToCursor()
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.scrollToCursor()
	case key.Matches(msg, m.keys.Select):
		if len(m.entries) > 0 {
			m.mode = galleryModeDetail
		}
	case key.Matches(msg, m.keys.New):
		cmd := m.openForm()
		return m, cmd
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadEntries()
	}
	return m, nil
}

func (m GalleryModel) handleDetailKeys(msg tea.KeyMsg) (GalleryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
		m.mode = galleryModeList
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	}
	// keep the list window on the selection for when the detail view closes
	m.scrollToCursor()
	return m, nil
}

// handleFormKeys handles key events in the add form
func (m GalleryModel) handleFormKeys(msg tea.KeyMsg) (GalleryModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m.submit()
	case key.Matches(msg, m.keys.NextField):
		cmd := m.focus((m.focused + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.focus((m.focused + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Select) && m.focused != fieldContent:
		// enter advances through the single-line fields
		cmd := m.focus(m.focused + 1)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m GalleryModel) updateFocused(msg tea.Msg) (GalleryModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focused == fieldContent {
		m.content, cmd = m.content.Update(msg)
	} else {
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	}
	return m, cmd
}

// submit hands the raw form values to the entry service; all validation happens there
func (m GalleryModel) submit() (GalleryModel, tea.Cmd) {
	c := entry.Candidate{
		Title:    m.inputs[fieldTitle].Value(),
		Date:     m.inputs[fieldDate].Value(),
		ImageURL: m.inputs[fieldImage].Value(),
		Content:  m.content.Value(),
	}
	m.saving = true
	return m, func() tea.Msg {
		e, err := m.services.Entry.Add(c)
		return entrySavedMsg{entry: e, err: err}
	}
}

func (m *GalleryModel) openForm() tea.Cmd {
	m.mode = galleryModeAdd
	m.formErr = ""
	m.invalid = nil
	m.status = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.inputs[fieldDate].SetValue(m.services.Entry.Today())
	m.content.Reset()
	return m.focus(fieldTitle)
}

func (m *GalleryModel) closeForm() {
	m.mode = galleryModeList
	m.formErr = ""
	m.invalid = nil
	m.saving = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.content.Blur()
}

func (m *GalleryModel) focus(field int) tea.Cmd {
	m.focused = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.content.Blur()

	if field == fieldContent {
		return m.content.Focus()
	}
	return m.inputs[field].Focus()
}

// invalidFields reports which form fields an add error refers to
func invalidFields(err error) map[string]bool {
	var verr *entry.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	out := make(map[string]bool)
	for _, f := range verr.Fields {
		out[f] = true
	}
	if verr.Date != "" {
		out[entry.FieldDate] = true
	}
	return out
}

// visibleRows is the number of gallery rows that fit the view
func (m GalleryModel) visibleRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(1, m.height-4)
}

func (m *GalleryModel) scrollToCursor() {
	rows := m.visibleRows()
	if rows == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View implements tea.Model
func (m GalleryModel) View() string {
	switch m.mode {
	case galleryModeAdd:
		return m.renderForm()
	case galleryModeDetail:
		return m.renderDetail()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Diary (%s)", pluralize(len(m.entries), "entry", "entries"))))
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.StatValue.Render(cli.EmptyGalleryTitle))
		b.WriteString("\n\n")
		b.WriteString(m.styles.FieldLabel.Render(cli.EmptyGalleryHint))
		b.WriteString("\n")
		b.WriteString(m.styles.FieldLabel.Render("Press 'n' to write one."))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.entries, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
		Offset: m.offset,
		Rows:   m.visibleRows(),
	}))
	return b.String()
}

// renderDetail renders every field of the selected entry; content is shown verbatim
func (m GalleryModel) renderDetail() string {
	if m.cursor >= len(m.entries) {
		return ""
	}
	e := m.entries[m.cursor].Entry

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(e.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Date:"))
	b.WriteString(m.styles.EntryDate.Render(cli.FormatDay(e.Date)))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Image:"))
	b.WriteString(m.styles.EntryImage.Render(e.ImageURL))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Written:"))
	b.WriteString(m.styles.StatValue.Render(cli.FormatCreated(e.CreatedAt)))
	b.WriteString("\n\n")
	b.WriteString(e.Content)
	b.WriteString("\n\n")
	b.WriteString(m.styles.FieldLabel.Render("↑/↓ previous/next entry  Esc back"))
	return b.String()
}

// renderForm renders the add form, keeping whatever the user typed
func (m GalleryModel) renderForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("New Entry"))
	b.WriteString("\n")

	if m.formErr != "" {
		b.WriteString(m.styles.Error.Render(m.formErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i := 0; i < fieldCount; i++ {
		b.WriteString(m.renderLabel(i))
		b.WriteString("\n")
		if i == fieldContent {
			b.WriteString(m.content.View())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n\n")
	}

	if m.saving {
		b.WriteString(m.styles.FieldLabel.Render("Saving..."))
	} else {
		b.WriteString(m.styles.FieldLabel.Render("Tab to switch fields, Ctrl+S to save, Esc to cancel"))
	}
	return b.String()
}

func (m GalleryModel) renderLabel(field int) string {
	label := fieldLabels[field] + ":"
	style := m.styles.FieldLabel
	if field == m.focused {
		label = "▸ " + label
		style = m.styles.FieldLabelFocused
	}
	if m.invalid[fieldNames[field]] {
		style = m.styles.Error
	}
	return style.Render(label)
}

// SetSize sets the view dimensions
func (m *GalleryModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	w := max(20, min(80, width-6))
	m.inputs[fieldTitle].Width = w
	m.inputs[fieldImage].Width = w
	m.content.SetWidth(w)
	m.content.SetHeight(max(3, min(12, height-18)))
	m.scrollToCursor()
}

// Selected returns the entry under the cursor
func (m GalleryModel) Selected() (service.IndexedEntry, bool) {
	if m.cursor >= len(m.entries) {
		return service.IndexedEntry{}, false
	}
	return m.entries[m.cursor], true
}

// IsInputMode returns true when the add form is capturing keyboard input
func (m GalleryModel) IsInputMode() bool {
	return m.mode == galleryModeAdd
}

// loadEntries creates a command to read the gallery from the store
func (m GalleryModel) loadEntries() tea.Cmd {
	return func() tea.Msg {
		return galleryLoadedMsg{entries: m.services.Entry.List()}
	}
}
