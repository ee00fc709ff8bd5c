package usecase

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SummaryCache holds health score summaries per user. Every write that moves
// a user's score or occupied machines must Invalidate that user.
//
// A nil *SummaryCache is a disabled cache; all methods are safe on it.
type SummaryCache struct {
	entries *cache.Cache
}

// NewSummaryCache returns nil for a non-positive ttl.
func NewSummaryCache(ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		return nil
	}
	return &SummaryCache{entries: cache.New(ttl, 2*ttl)}
}

func (s *SummaryCache) Get(userID string) (HealthScoreSummary, bool) {
	if s == nil {
		return HealthScoreSummary{}, false
	}
	v, found := s.entries.Get(userID)
	if !found {
		return HealthScoreSummary{}, false
	}
	return v.(HealthScoreSummary), true
}

func (s *SummaryCache) Set(userID string, summary HealthScoreSummary) {
	if s == nil {
		return
	}
	s.entries.Set(userID, summary, cache.DefaultExpiration)
}

func (s *SummaryCache) Invalidate(userID string) {
	if s == nil || userID == "" {
		return
	}
	s.entries.Delete(userID)
}
