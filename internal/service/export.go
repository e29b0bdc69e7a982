package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/filter"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// ErrUnknownFormat is returned for an unsupported export format
var ErrUnknownFormat = errors.New("unknown export format")

// ExportService writes entries in portable formats
type ExportService struct {
	entries *EntryService
}

// NewExportService creates a new ExportService
func NewExportService(entries *EntryService) *ExportService {
	return &ExportService{entries: entries}
}

// frontmatter is the YAML header of a markdown export; content is the body
type frontmatter struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	ImageURL  string `yaml:"imageUrl"`
	CreatedAt int64  `yaml:"createdAt"`
}

// Formats lists the supported export formats
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatMarkdown}
}

// Export writes the entries matching f to w in gallery order and returns how many were written.
func (s *ExportService) Export(w io.Writer, format string, f *filter.Filter) (int, error) {
	var entries []entry.Entry
	for _, ie := range s.entries.List() {
		if f.IsEmpty() || f.Matches(ie.Entry) {
			entries = append(entries, ie.Entry)
		}
	}
	if entries == nil {
		entries = []entry.Entry{}
	}

	var err error
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		err = writeJSON(w, entries)
	case FormatYAML:
		err = writeYAML(w, entries)
	case FormatMarkdown, "md":
		err = writeMarkdown(w, entries)
	default:
		return 0, fmt.Errorf("%w %q (use %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func writeJSON(w io.Writer, entries []entry.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, entries []entry.Entry) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

// writeMarkdown emits one document per entry: YAML frontmatter between
// --- lines followed by the content verbatim.
func writeMarkdown(w io.Writer, entries []entry.Entry) error {
	var buf bytes.Buffer
	for i, e := range entries {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("---\n")

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(frontmatter{
			ID:        e.ID,
			Title:     e.Title,
			Date:      e.Date,
			ImageURL:  e.ImageURL,
			CreatedAt: e.CreatedAt,
		}); err != nil {
			return fmt.Errorf("failed to encode frontmatter: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return err
		}

		buf.WriteString("---\n\n")
		buf.WriteString(e.Content)
		buf.WriteString("\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}
