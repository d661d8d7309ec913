// Package result defines the ranked page returned by a search.
package result

import (
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
)

// Page is one slice of the full ranked list. Invariant: Total >= len(Items)
// and Items is a contiguous slice of the ranked order.
type Page struct {
	items []candidate.Candidate
	total int
	took  time.Duration
}

// New creates a page.
func New(items []candidate.Candidate, total int, took time.Duration) Page {
	return Page{items: items, total: total, took: took}
}

// Items returns the page slice, never nil.
func (p *Page) Items() []candidate.Candidate {
	if p.items == nil {
		return []candidate.Candidate{}
	}
	return p.items
}

// Total returns the count of candidates matching the filters, pre-pagination.
func (p *Page) Total() int { return p.total }

// Took returns the measured query latency.
func (p *Page) Took() time.Duration { return p.took }

// TookSeconds returns the latency in seconds, as displayed by the UI.
func (p *Page) TookSeconds() float64 { return p.took.Seconds() }
