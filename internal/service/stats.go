package service

import (
	"github.com/xolan/diary/internal/stats"
)

// StatsService computes diary statistics
type StatsService struct {
	entries *EntryService
}

// NewStatsService creates a new StatsService
func NewStatsService(entries *EntryService) *StatsService {
	return &StatsService{entries: entries}
}

func (s *StatsService) Compute() StatsResult {
	today := s.entries.Today()
	raw := s.entries.store.List()
	return StatsResult{
		Statistics: stats.Calculate(raw, today),
		Today:      today,
	}
}
