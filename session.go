package deskhub

import (
	"context"
	"sync/atomic"
)

// Session guards against stale search results when queries overlap, as
// they do under fast typing: every Go call takes a new monotonic token,
// and a result is delivered only if no newer search has started since.
type Session struct {
	seq atomic.Uint64
}

// NewSession creates a search session.
func NewSession() *Session {
	return &Session{}
}

// Go runs the search in a goroutine and calls deliver with the outcome
// unless a newer search has started in the meantime. Stale outcomes are
// dropped silently, errors included. deliver runs on the search
// goroutine; callers synchronize their own state.
func (s *Session) Go(
	ctx context.Context,
	search func(ctx context.Context) (SearchResult, error),
	deliver func(SearchResult, error),
) {
	token := s.seq.Add(1)
	go func() {
		res, err := search(ctx)
		if s.seq.Load() != token {
			return
		}
		deliver(res, err)
	}()
}

// Invalidate drops every in-flight search without starting a new one.
// Useful when the query box is cleared.
func (s *Session) Invalidate() {
	s.seq.Add(1)
}
