// Package search implements the relevance filter and ranker: substring
// matching over the candidate set, facet filtering, stable ordering and
// pagination.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/request"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/result"
)

// Service executes search queries over a candidate source.
type Service struct {
	source Source
	cache  PageCache
	now    func() time.Time
	delay  time.Duration
}

// New creates a search service.
func New(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

// WithCache returns a copy using the page cache.
func (s *Service) WithCache(cache PageCache) *Service {
	c := *s
	c.cache = cache
	return &c
}

// WithSimulatedDelay returns a copy that sleeps before answering, to
// make the demo feel like a real backend. Zero disables it.
func (s *Service) WithSimulatedDelay(d time.Duration) *Service {
	c := *s
	c.delay = d
	return &c
}

// WithClock returns a copy using the given clock. For tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now
	return &c
}

// Search runs one query: filter, rank, paginate. The empty query
// matches everything; ranking is relevance descending with newer
// records breaking ties.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	start := s.now()

	if s.cache != nil {
		if page, ok := s.cache.Get(ctx, req); ok {
			return page, nil
		}
	}

	if err := s.simulateLatency(ctx); err != nil {
		return result.Page{}, err
	}

	cands, err := s.source.Candidates(ctx)
	if err != nil {
		return result.Page{}, fmt.Errorf("load candidates: %w", err)
	}

	now := s.now()
	filters := req.Filters()
	query := strings.ToLower(req.Query())

	matched := make([]candidate.Candidate, 0, len(cands))
	for _, c := range cands {
		if !matchesQuery(&c, query) {
			continue
		}
		if !filters.Matches(&c, now) {
			continue
		}
		matched = append(matched, c)
	}

	rank(matched)

	total := len(matched)
	items := paginate(matched, req.Page(), req.PageSize())
	page := result.New(items, total, s.now().Sub(start))

	if s.cache != nil {
		s.cache.Put(ctx, req, page)
	}
	return page, nil
}

// matchesQuery reports whether the candidate contains the lowercased
// query as a substring of its title or snippet. Empty query matches all.
func matchesQuery(c *candidate.Candidate, query string) bool {
	if query == "" {
		return true
	}
	haystack := strings.ToLower(c.Title() + " " + c.Snippet())
	return strings.Contains(haystack, query)
}

// rank orders candidates by relevance descending, then timestamp
// descending. The sort is stable so equal records keep source order.
func rank(cands []candidate.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Relevance() != cands[j].Relevance() {
			return cands[i].Relevance() > cands[j].Relevance()
		}
		return cands[i].Timestamp() > cands[j].Timestamp()
	})
}

// simulateLatency waits out the configured demo delay, honoring
// cancellation.
func (s *Service) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
