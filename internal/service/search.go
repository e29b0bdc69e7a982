package service

import (
	"strings"

	"github.com/xolan/diary/internal/filter"
)

// SearchService finds entries by keyword and day range
type SearchService struct {
	entries *EntryService
}

// NewSearchService creates a new SearchService
func NewSearchService(entries *EntryService) *SearchService {
	return &SearchService{entries: entries}
}

// BuildFilter resolves from/to (any friendly date, or empty) into a filter.
func (s *SearchService) BuildFilter(keyword, from, to string) (*filter.Filter, error) {
	var err error
	if strings.TrimSpace(from) != "" {
		if from, err = s.entries.ParseDay(from); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(to) != "" {
		if to, err = s.entries.ParseDay(to); err != nil {
			return nil, err
		}
	}
	return filter.NewFilter(keyword, from, to), nil
}

// Search returns matching entries in gallery order. Index is the position in
// the full gallery, so it lines up with `diary list`.
func (s *SearchService) Search(keyword, from, to string) (*SearchResult, error) {
	f, err := s.BuildFilter(keyword, from, to)
	if err != nil {
		return nil, err
	}

	var matched []IndexedEntry
	for _, ie := range s.entries.List() {
		if f.Matches(ie.Entry) {
			matched = append(matched, ie)
		}
	}

	return &SearchResult{
		Entries: matched,
		Query:   f.Keyword,
		From:    f.From,
		To:      f.To,
		Total:   len(matched),
	}, nil
}
